package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"podmerge/internal/domain"
	"podmerge/internal/service/mocks"
)

type MergeServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *mockStores

	publisher *mocks.MockPublisher
	service   *MergeService
	e1        *domain.Episode
	e2        *domain.Episode
}

func (s *MergeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newMockStores(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.service = NewMergeService(s.m.stores(), s.m.txManager, s.publisher, s.m.logger)

	podcastID := uuid.New()
	s.e1 = newEpisode(podcastID, "Episode")
	s.e2 = newEpisode(podcastID, "Episode (copy)")
}

func (s *MergeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMergeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MergeServiceTestSuite))
}

func (s *MergeServiceTestSuite) expectEpisodeMerge() {
	s.m.episodes.EXPECT().Get(gomock.Any(), s.e1.ID).Return(s.e1, nil)
	s.m.episodes.EXPECT().Get(gomock.Any(), s.e2.ID).Return(s.e2, nil)
	s.m.expectEmptyEpisode(s.e2)

	alias := newState(1, s.e2)
	s.m.states.EXPECT().ListStates(gomock.Any(), s.e1.ID).Return(nil, nil)
	s.m.states.EXPECT().ListStates(gomock.Any(), s.e2.ID).Return([]*domain.EpisodeState{alias}, nil)
	s.m.states.EXPECT().UpdateOwner(gomock.Any(), alias, s.e1.PodcastID, &s.e1.ID).Return(nil)

	s.m.mergedUUIDs.EXPECT().Record(gomock.Any(), s.e2.ID, s.e1.Ref()).Return(nil)
	s.m.episodes.EXPECT().Delete(gomock.Any(), s.e2.ID).Return(nil)
	s.m.episodes.EXPECT().Update(gomock.Any(), s.e1).Return(nil)
}

func (s *MergeServiceTestSuite) TestMergeEpisodes_Success() {
	ctx := context.Background()
	s.expectEpisodeMerge()

	s.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, stats *domain.MergeStats) error {
		s.Equal(domain.KindEpisode, stats.Kind)
		s.Equal(s.e1.ID, stats.Target)
		return nil
	})

	stats, err := s.service.MergeEpisodes(ctx, domain.EpisodeMergeRequest{
		Target:  s.e1.ID,
		Aliases: []uuid.UUID{s.e2.ID},
	})

	s.Require().NoError(err)
	s.Equal(domain.KindEpisode, stats.Kind)
	s.Equal([]uuid.UUID{s.e2.ID}, stats.Aliases)
	s.Equal(1, stats.Actions[domain.ActionMoveEpisodeState])
	s.Zero(stats.Skipped)
}

func (s *MergeServiceTestSuite) TestMergeEpisodes_PublishErrorIgnored() {
	ctx := context.Background()
	s.expectEpisodeMerge()

	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("channel closed"))

	stats, err := s.service.MergeEpisodes(ctx, domain.EpisodeMergeRequest{
		Target:  s.e1.ID,
		Aliases: []uuid.UUID{s.e2.ID},
	})

	s.Require().NoError(err)
	s.NotNil(stats)
}

func (s *MergeServiceTestSuite) TestMergeEpisodes_NotFound() {
	ctx := context.Background()
	s.m.episodes.EXPECT().Get(ctx, s.e1.ID).Return(nil, domain.ErrNotFound)

	stats, err := s.service.MergeEpisodes(ctx, domain.EpisodeMergeRequest{
		Target:  s.e1.ID,
		Aliases: []uuid.UUID{s.e2.ID},
	})

	s.Require().ErrorIs(err, domain.ErrNotFound)
	s.Nil(stats)
}

func (s *MergeServiceTestSuite) TestMergeEpisodes_WithoutPublisher() {
	s.service = NewMergeService(s.m.stores(), s.m.txManager, nil, s.m.logger)
	s.expectEpisodeMerge()

	_, err := s.service.MergeEpisodes(context.Background(), domain.EpisodeMergeRequest{
		Target:  s.e1.ID,
		Aliases: []uuid.UUID{s.e2.ID},
	})

	s.Require().NoError(err)
}

func (s *MergeServiceTestSuite) TestMergePodcasts_Empty() {
	_, err := s.service.MergePodcasts(context.Background(), domain.PodcastMergeRequest{})

	var selfErr *domain.SelfMergeError
	s.Require().ErrorAs(err, &selfErr)
}

func (s *MergeServiceTestSuite) TestMergePodcasts_SinglePodcast() {
	ctx := context.Background()
	p := newPodcast("Only")
	s.m.podcasts.EXPECT().Get(ctx, p.ID).Return(p, nil)

	_, err := s.service.MergePodcasts(ctx, domain.PodcastMergeRequest{Podcasts: []uuid.UUID{p.ID}})

	var selfErr *domain.SelfMergeError
	s.Require().ErrorAs(err, &selfErr)
	s.Equal(p.ID, selfErr.ID)
}

func (s *MergeServiceTestSuite) TestMergePodcasts_Success() {
	ctx := context.Background()
	p1 := newPodcast("")
	p2 := newPodcast("Alias title")
	p2.Author = "Someone"

	s.m.podcasts.EXPECT().Get(ctx, p1.ID).Return(p1, nil)
	s.m.podcasts.EXPECT().Get(ctx, p2.ID).Return(p2, nil)
	s.m.episodes.EXPECT().ListByPodcast(ctx, p2.ID).Return(nil, nil)
	s.m.expectEmptyPodcast(p2)
	s.m.mergedUUIDs.EXPECT().Record(ctx, p2.ID, p1.Ref()).Return(nil)
	s.m.podcasts.EXPECT().Delete(ctx, p2.ID).Return(nil)
	s.m.podcasts.EXPECT().Update(ctx, p1).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.MergePodcasts(ctx, domain.PodcastMergeRequest{Podcasts: []uuid.UUID{p1.ID, p2.ID}})

	s.Require().NoError(err)
	s.Equal(domain.KindPodcast, stats.Kind)
	s.Equal(p1.ID, stats.Target)
	s.Equal("Alias title", p1.Title)
	s.Equal("Someone", p1.Author)
}
