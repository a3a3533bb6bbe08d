package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"podmerge/internal/domain"
)

type PodcastMergerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *mockStores

	actions domain.Actions
	p1      *domain.Podcast
	p2      *domain.Podcast
}

func (s *PodcastMergerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newMockStores(s.ctrl)
	s.actions = domain.Actions{}
	s.p1 = newPodcast("Target")
	s.p2 = newPodcast("Alias")
}

func (s *PodcastMergerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPodcastMergerTestSuite(t *testing.T) {
	suite.Run(t, new(PodcastMergerTestSuite))
}

func (s *PodcastMergerTestSuite) TestNew_SinglePodcast() {
	_, err := NewPodcastMerger([]*domain.Podcast{s.p1}, s.actions, nil, s.m.engine(), false)

	var selfErr *domain.SelfMergeError
	s.Require().ErrorAs(err, &selfErr)
	s.Equal(s.p1.ID, selfErr.ID)
}

func (s *PodcastMergerTestSuite) TestNew_RepeatedPodcast() {
	_, err := NewPodcastMerger([]*domain.Podcast{s.p1, s.p2, s.p1}, s.actions, nil, s.m.engine(), false)

	var selfErr *domain.SelfMergeError
	s.Require().ErrorAs(err, &selfErr)
	s.Equal(domain.KindPodcast, selfErr.Kind)
}

func (s *PodcastMergerTestSuite) TestMerge_GroupsThenEpisodesThenPodcasts() {
	ctx := context.Background()

	e1 := newEpisode(s.p1.ID, "Episode 1")
	e2 := newEpisode(s.p2.ID, "Episode 1")
	e3 := newEpisode(s.p2.ID, "Episode 3")
	state := newState(4, e3)
	url := &domain.Attachment{ID: 1, Kind: domain.KindURL, Value: "https://example.com/3.mp3", Scope: e3.Scope(), OwnerKind: domain.KindEpisode, OwnerID: e3.ID}

	// episode group
	s.m.expectEmptyEpisode(e2)
	s.m.states.EXPECT().ListStates(ctx, e1.ID).Return(nil, nil)
	s.m.states.EXPECT().ListStates(ctx, e2.ID).Return(nil, nil)
	s.m.mergedUUIDs.EXPECT().Record(ctx, e2.ID, e1.Ref()).Return(nil)
	s.m.episodes.EXPECT().Delete(ctx, e2.ID).Return(nil)
	s.m.episodes.EXPECT().Update(ctx, e1).Return(nil)

	// leftover episodes of the alias, listed for states and for the move
	s.m.episodes.EXPECT().ListByPodcast(ctx, s.p2.ID).Return([]*domain.Episode{e3}, nil).Times(2)
	s.m.states.EXPECT().ListStates(ctx, e3.ID).Return([]*domain.EpisodeState{state}, nil)
	s.m.states.EXPECT().UpdateOwner(ctx, state, s.p1.ID, gomock.Nil()).Return(nil)

	// podcast merge
	s.m.urls.EXPECT().ListByOwner(ctx, e3.Ref()).Return([]*domain.Attachment{url}, nil)
	s.m.slugs.EXPECT().ListByOwner(ctx, e3.Ref()).Return(nil, nil)
	s.m.urls.EXPECT().Update(ctx, url).DoAndReturn(func(_ context.Context, a *domain.Attachment) error {
		s.Equal(s.p1.AsScope(), a.Scope)
		return nil
	})
	s.m.episodes.EXPECT().Update(ctx, e3).DoAndReturn(func(_ context.Context, e *domain.Episode) error {
		s.Equal(s.p1.ID, e.PodcastID)
		return nil
	})
	s.m.subscriptions.EXPECT().ListByPodcast(ctx, s.p2.ID).Return(nil, nil)
	s.m.history.EXPECT().ListByPodcast(ctx, s.p2.ID).Return(nil, nil)
	s.m.publishers.EXPECT().ListByPodcast(ctx, s.p2.ID).Return(nil, nil)
	s.m.expectGeneric(s.p2.Ref())
	s.m.mergedUUIDs.EXPECT().Record(ctx, s.p2.ID, s.p1.Ref()).Return(nil)
	s.m.podcasts.EXPECT().Delete(ctx, s.p2.ID).Return(nil)
	s.m.podcasts.EXPECT().Update(ctx, s.p1).Return(nil)

	merger, err := NewPodcastMerger(
		[]*domain.Podcast{s.p1, s.p2},
		s.actions,
		[][]*domain.Episode{{e1, e2}, {}},
		s.m.engine(),
		false,
	)
	s.Require().NoError(err)

	target, err := merger.Merge(ctx)

	s.Require().NoError(err)
	s.Same(s.p1, target)
	s.Equal(1, s.actions[domain.ActionReassignEpisode])
	s.Equal(1, s.actions[domain.ActionReassignEpisodeState])
	s.Zero(s.actions[domain.ActionSkipConflict])
}

func (s *PodcastMergerTestSuite) TestMerge_KeepOld() {
	ctx := context.Background()

	s.m.episodes.EXPECT().ListByPodcast(ctx, s.p2.ID).Return(nil, nil).Times(2)
	s.m.subscriptions.EXPECT().ListByPodcast(ctx, s.p2.ID).Return(nil, nil)
	s.m.history.EXPECT().ListByPodcast(ctx, s.p2.ID).Return(nil, nil)
	s.m.publishers.EXPECT().ListByPodcast(ctx, s.p2.ID).Return(nil, nil)
	s.m.expectGeneric(s.p2.Ref())
	s.m.podcasts.EXPECT().Update(ctx, s.p1).Return(nil)

	merger, err := NewPodcastMerger([]*domain.Podcast{s.p1, s.p2}, s.actions, nil, s.m.engine(), true)
	s.Require().NoError(err)

	_, err = merger.Merge(ctx)

	s.Require().NoError(err)
}
