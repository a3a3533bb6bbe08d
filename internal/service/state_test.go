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

type StateMergerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *mockStores

	actions domain.Actions
	merger  *StateMerger
	episode *domain.Episode
}

func (s *StateMergerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newMockStores(s.ctrl)
	s.actions = domain.Actions{}
	s.merger = NewStateMerger(s.m.states, s.actions, s.m.logger)
	s.episode = newEpisode(uuid.New(), "Episode")
}

func (s *StateMergerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStateMergerTestSuite(t *testing.T) {
	suite.Run(t, new(StateMergerTestSuite))
}

func (s *StateMergerTestSuite) TestMerge_SameState() {
	state := newState(1, s.episode)

	err := s.merger.Merge(context.Background(), state, state)

	var selfErr *domain.SelfMergeError
	s.Require().ErrorAs(err, &selfErr)
	s.Equal(state.ID, selfErr.ID)
	s.Empty(s.actions)
}

func (s *StateMergerTestSuite) TestMerge_DifferentUsers() {
	state := newState(1, s.episode)
	state2 := newState(2, s.episode)

	err := s.merger.Merge(context.Background(), state, state2)

	var ownerErr *domain.OwnerMismatchError
	s.Require().ErrorAs(err, &ownerErr)
	s.Equal(int64(1), ownerErr.User)
	s.Equal(int64(2), ownerErr.OtherUser)
	s.Empty(s.actions)
}

func (s *StateMergerTestSuite) TestMerge_MovesActionsAndDeletes() {
	ctx := context.Background()
	state := newState(1, s.episode)
	state2 := newState(1, newEpisode(uuid.New(), "Other"))

	gomock.InOrder(
		s.m.states.EXPECT().Merge(ctx, state, state2).Return(nil),
		s.m.states.EXPECT().Delete(ctx, state2).Return(nil),
	)

	err := s.merger.Merge(ctx, state, state2)

	s.Require().NoError(err)
	s.Equal(1, s.actions[domain.ActionMergeEpisodeState])
}

func (s *StateMergerTestSuite) TestMerge_StoreError() {
	ctx := context.Background()
	state := newState(1, s.episode)
	state2 := newState(1, s.episode)

	s.m.states.EXPECT().Merge(ctx, state, state2).Return(errors.New("connection reset"))

	err := s.merger.Merge(ctx, state, state2)

	s.Require().Error(err)
	s.Contains(err.Error(), "connection reset")
	s.Zero(s.actions[domain.ActionMergeEpisodeState])
}
