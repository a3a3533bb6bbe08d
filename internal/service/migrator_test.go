package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"podmerge/internal/domain"
)

type MigratorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *mockStores

	actions  domain.Actions
	migrator *Migrator
	e1       *domain.Episode
	e2       *domain.Episode
}

func (s *MigratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newMockStores(s.ctrl)
	s.actions = domain.Actions{}
	s.migrator = s.m.engine().Migrator(s.actions)

	podcastID := uuid.New()
	s.e1 = newEpisode(podcastID, "")
	s.e2 = newEpisode(podcastID, "Second")
}

func (s *MigratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMigratorTestSuite(t *testing.T) {
	suite.Run(t, new(MigratorTestSuite))
}

// expectEpisodeDeletion expects the deletion hook and delete of an alias
// that holds no states.
func (s *MigratorTestSuite) expectEpisodeDeletion(primary, alias *domain.Episode) {
	s.m.states.EXPECT().ListStates(gomock.Any(), primary.ID).Return(nil, nil)
	s.m.states.EXPECT().ListStates(gomock.Any(), alias.ID).Return(nil, nil)
	s.m.mergedUUIDs.EXPECT().Record(gomock.Any(), alias.ID, primary.Ref()).Return(nil)
	s.m.episodes.EXPECT().Delete(gomock.Any(), alias.ID).Return(nil)
}

func (s *MigratorTestSuite) TestMerge_TypeMismatch() {
	p := newPodcast("Podcast")

	_, err := s.migrator.Merge(context.Background(), s.e1, []domain.Mergeable{s.e2, p}, false)

	var typeErr *domain.TypeMismatchError
	s.Require().ErrorAs(err, &typeErr)
	s.Equal(domain.KindEpisode, typeErr.Want)
	s.Equal(domain.KindPodcast, typeErr.Got)
}

func (s *MigratorTestSuite) TestMerge_SelfMerge() {
	_, err := s.migrator.Merge(context.Background(), s.e1, []domain.Mergeable{s.e2, s.e1}, false)

	var selfErr *domain.SelfMergeError
	s.Require().ErrorAs(err, &selfErr)
	s.Equal(s.e1.ID, selfErr.ID)
}

func (s *MigratorTestSuite) TestMerge_UnsupportedKind() {
	_, err := s.migrator.Merge(context.Background(), &feed{id: uuid.New()}, []domain.Mergeable{&feed{id: uuid.New()}}, false)

	var typeErr *domain.UnsupportedTypeError
	s.Require().ErrorAs(err, &typeErr)
	s.Equal(domain.Kind("feed"), typeErr.Kind)
	s.EqualError(err, "unknown type for merge: feed")
}

func (s *MigratorTestSuite) TestMerge_MovesReferencesAndDeletesAlias() {
	ctx := context.Background()

	entry := &domain.HistoryEntry{ID: 10, UserID: 1, PodcastID: s.e2.PodcastID, EpisodeID: &s.e2.ID, Action: "play"}
	url := &domain.Attachment{ID: 20, Kind: domain.KindURL, Value: "https://example.com/2.mp3", Scope: s.e2.Scope(), OwnerKind: domain.KindEpisode, OwnerID: s.e2.ID}
	old := &domain.MergedUUID{UUID: uuid.New(), OwnerKind: domain.KindEpisode, OwnerID: s.e2.ID}

	s.m.history.EXPECT().ListByEpisode(ctx, s.e2.ID).Return([]*domain.HistoryEntry{entry}, nil)
	s.m.history.EXPECT().Update(ctx, entry).DoAndReturn(func(_ context.Context, e *domain.HistoryEntry) error {
		s.Equal(s.e1.ID, *e.EpisodeID)
		return nil
	})

	s.m.urls.EXPECT().ListByOwner(ctx, s.e2.Ref()).Return([]*domain.Attachment{url}, nil)
	s.m.urls.EXPECT().MaxOrder(ctx, s.e1.Ref()).Return(2, nil)
	s.m.urls.EXPECT().Update(ctx, url).DoAndReturn(func(_ context.Context, a *domain.Attachment) error {
		s.Equal(s.e1.Ref(), a.Owner())
		s.Equal(3, a.Order)
		s.Equal(s.e1.Scope(), a.Scope)
		return nil
	})
	s.m.slugs.EXPECT().ListByOwner(ctx, s.e2.Ref()).Return(nil, nil)

	s.m.mergedUUIDs.EXPECT().ListByOwner(ctx, s.e2.Ref()).Return([]*domain.MergedUUID{old}, nil)
	s.m.mergedUUIDs.EXPECT().Update(ctx, old).Return(nil)

	s.expectEpisodeDeletion(s.e1, s.e2)
	s.m.episodes.EXPECT().Update(ctx, s.e1).Return(nil)

	merged, err := s.migrator.Merge(ctx, s.e1, []domain.Mergeable{s.e2}, false)

	s.Require().NoError(err)
	s.Same(s.e1, merged)
	s.Equal(s.e1.Ref(), old.Owner())
	s.Zero(s.actions[domain.ActionSkipConflict])
}

func (s *MigratorTestSuite) TestMerge_DiscardsConflictingObject() {
	ctx := context.Background()
	url := &domain.Attachment{ID: 20, Kind: domain.KindURL, Value: "https://example.com/1.mp3", OwnerKind: domain.KindEpisode, OwnerID: s.e2.ID}

	s.m.history.EXPECT().ListByEpisode(ctx, s.e2.ID).Return(nil, nil)
	s.m.urls.EXPECT().ListByOwner(ctx, s.e2.Ref()).Return([]*domain.Attachment{url}, nil)
	s.m.urls.EXPECT().MaxOrder(ctx, s.e1.Ref()).Return(0, nil)
	s.m.urls.EXPECT().Update(ctx, url).Return(&domain.ConstraintConflictError{
		Constraint: "urls_scope_url_key",
		Err:        errors.New("duplicate key value"),
	})
	s.m.urls.EXPECT().Delete(ctx, int64(20)).Return(nil)
	s.m.slugs.EXPECT().ListByOwner(ctx, s.e2.Ref()).Return(nil, nil)
	s.m.mergedUUIDs.EXPECT().ListByOwner(ctx, s.e2.Ref()).Return(nil, nil)

	s.expectEpisodeDeletion(s.e1, s.e2)
	s.m.episodes.EXPECT().Update(ctx, s.e1).Return(nil)

	_, err := s.migrator.Merge(ctx, s.e1, []domain.Mergeable{s.e2}, false)

	s.Require().NoError(err)
	s.Equal(1, s.actions[domain.ActionSkipConflict])
}

func (s *MigratorTestSuite) TestMerge_OtherErrorIsFatal() {
	ctx := context.Background()
	entry := &domain.HistoryEntry{ID: 10, UserID: 1, PodcastID: s.e2.PodcastID, EpisodeID: &s.e2.ID}

	s.m.history.EXPECT().ListByEpisode(ctx, s.e2.ID).Return([]*domain.HistoryEntry{entry}, nil)
	s.m.history.EXPECT().Update(ctx, entry).Return(errors.New("connection reset"))

	_, err := s.migrator.Merge(ctx, s.e1, []domain.Mergeable{s.e2}, false)

	s.Require().Error(err)
	s.Contains(err.Error(), "connection reset")
	s.Zero(s.actions[domain.ActionSkipConflict])
}

func (s *MigratorTestSuite) TestMerge_KeepOldFillsBlankAttributes() {
	ctx := context.Background()
	e3 := newEpisode(s.e1.PodcastID, "Third")
	duration := int64(3600)
	e3.Duration = &duration
	s.e1.GUID = "guid-1"
	s.e2.GUID = "guid-2"

	s.m.expectEmptyEpisode(s.e2)
	s.m.expectEmptyEpisode(e3)
	s.m.episodes.EXPECT().Update(ctx, s.e1).Return(nil)

	_, err := s.migrator.Merge(ctx, s.e1, []domain.Mergeable{s.e2, e3}, true)

	s.Require().NoError(err)
	s.Equal("Second", s.e1.Title)
	s.Equal("guid-1", s.e1.GUID)
	s.Require().NotNil(s.e1.Duration)
	s.Equal(int64(3600), *s.e1.Duration)
}

func (s *MigratorTestSuite) TestMerge_PublisherLinkConflictLeavesLinkDetached() {
	ctx := context.Background()
	p1 := newPodcast("Target")
	p2 := newPodcast("Alias")
	link := &domain.Publisher{UserID: 9, PodcastID: p2.ID}

	s.m.episodes.EXPECT().ListByPodcast(ctx, p2.ID).Return(nil, nil)
	s.m.subscriptions.EXPECT().ListByPodcast(ctx, p2.ID).Return(nil, nil)
	s.m.history.EXPECT().ListByPodcast(ctx, p2.ID).Return(nil, nil)
	s.m.publishers.EXPECT().ListByPodcast(ctx, p2.ID).Return([]*domain.Publisher{link}, nil)
	gomock.InOrder(
		s.m.publishers.EXPECT().Remove(ctx, p2.ID, int64(9)).Return(nil),
		s.m.publishers.EXPECT().Add(ctx, p1.ID, int64(9)).Return(&domain.ConstraintConflictError{Constraint: "podcast_publishers_pkey"}),
	)
	s.m.expectGeneric(p2.Ref())

	s.m.mergedUUIDs.EXPECT().Record(ctx, p2.ID, p1.Ref()).Return(nil)
	s.m.podcasts.EXPECT().Delete(ctx, p2.ID).Return(nil)
	s.m.podcasts.EXPECT().Update(ctx, p1).Return(nil)

	_, err := s.migrator.Merge(ctx, p1, []domain.Mergeable{p2}, false)

	s.Require().NoError(err)
	s.Equal(1, s.actions[domain.ActionSkipConflict])
}
