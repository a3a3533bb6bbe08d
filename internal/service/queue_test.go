package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"podmerge/internal/domain"
	"podmerge/internal/service/mocks"
)

type QueueProcessorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	requests  *mocks.MockRequestStore
	merger    *mocks.MockMerger
	processor *QueueProcessor
}

func (s *QueueProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.requests = mocks.NewMockRequestStore(s.ctrl)
	s.merger = mocks.NewMockMerger(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.processor = NewQueueProcessor(s.requests, s.merger, 10, logger)
}

func (s *QueueProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestQueueProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(QueueProcessorTestSuite))
}

func (s *QueueProcessorTestSuite) TestProcessPending_Empty() {
	ctx := context.Background()
	s.requests.EXPECT().ListPending(ctx, 10).Return(nil, nil)

	stats, err := s.processor.ProcessPending(ctx)

	s.Require().NoError(err)
	s.Zero(stats.Processed)
	s.Zero(stats.Failed)
}

func (s *QueueProcessorTestSuite) TestProcessPending_MixedResults() {
	ctx := context.Background()
	target, alias := uuid.New(), uuid.New()
	group := []uuid.UUID{uuid.New(), uuid.New()}

	podcasts := &domain.MergeRequest{ID: 1, Kind: domain.KindPodcast, TargetID: target, AliasIDs: []uuid.UUID{alias}, Groups: [][]uuid.UUID{group}}
	episodes := &domain.MergeRequest{ID: 2, Kind: domain.KindEpisode, TargetID: group[0], AliasIDs: []uuid.UUID{group[1]}, KeepOld: true}

	s.requests.EXPECT().ListPending(ctx, 10).Return([]*domain.MergeRequest{podcasts, episodes}, nil)

	s.merger.EXPECT().MergePodcasts(ctx, domain.PodcastMergeRequest{
		Podcasts: []uuid.UUID{target, alias},
		Groups:   [][]uuid.UUID{group},
	}).Return(&domain.MergeStats{Skipped: 2}, nil)
	s.requests.EXPECT().MarkDone(ctx, int64(1)).Return(nil)

	s.merger.EXPECT().MergeEpisodes(ctx, domain.EpisodeMergeRequest{
		Target:  group[0],
		Aliases: []uuid.UUID{group[1]},
		KeepOld: true,
	}).Return(nil, errors.New("load episode: not found"))
	s.requests.EXPECT().MarkFailed(ctx, int64(2), "load episode: not found").Return(nil)

	stats, err := s.processor.ProcessPending(ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Processed)
	s.Equal(1, stats.Failed)
	s.Equal(2, stats.Skipped)
}

func (s *QueueProcessorTestSuite) TestProcessPending_ListError() {
	ctx := context.Background()
	s.requests.EXPECT().ListPending(ctx, 10).Return(nil, errors.New("db down"))

	_, err := s.processor.ProcessPending(ctx)

	s.Require().Error(err)
}

func (s *QueueProcessorTestSuite) TestEnqueue() {
	ctx := context.Background()
	req := &domain.MergeRequest{Kind: domain.KindEpisode, TargetID: uuid.New(), AliasIDs: []uuid.UUID{uuid.New()}}

	s.requests.EXPECT().Enqueue(ctx, req).Return(nil)

	s.Require().NoError(s.processor.Enqueue(ctx, req))
}

func (s *QueueProcessorTestSuite) TestEnqueue_Invalid() {
	ctx := context.Background()

	err := s.processor.Enqueue(ctx, &domain.MergeRequest{Kind: domain.KindURL, TargetID: uuid.New(), AliasIDs: []uuid.UUID{uuid.New()}})
	var typeErr *domain.UnsupportedTypeError
	s.Require().ErrorAs(err, &typeErr)

	err = s.processor.Enqueue(ctx, &domain.MergeRequest{Kind: domain.KindPodcast, TargetID: uuid.New()})
	var selfErr *domain.SelfMergeError
	s.Require().ErrorAs(err, &selfErr)

	err = s.processor.Enqueue(ctx, &domain.MergeRequest{
		Kind:     domain.KindEpisode,
		TargetID: uuid.New(),
		AliasIDs: []uuid.UUID{uuid.New()},
		Groups:   [][]uuid.UUID{{uuid.New()}},
	})
	s.Require().Error(err)
}
