package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"podmerge/internal/domain"
)

type MergeService struct {
	engine    *Engine
	podcasts  PodcastStore
	episodes  EpisodeStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

// NewMergeService creates the merge entry point. publisher may be nil.
func NewMergeService(
	stores Stores,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *MergeService {
	return &MergeService{
		engine:    NewEngine(stores, txManager, logger),
		podcasts:  stores.Podcasts,
		episodes:  stores.Episodes,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// MergePodcasts merges req.Podcasts[1:] into req.Podcasts[0] in a single
// transaction. Episode groups are merged first.
func (s *MergeService) MergePodcasts(ctx context.Context, req domain.PodcastMergeRequest) (*domain.MergeStats, error) {
	startTime := time.Now()
	if len(req.Podcasts) == 0 {
		return nil, &domain.SelfMergeError{Kind: domain.KindPodcast}
	}

	s.logger.Info("starting podcast merge",
		"target", req.Podcasts[0],
		"aliases", req.Podcasts[1:],
		"groups", len(req.Groups),
		"keep_old", req.KeepOld,
	)

	actions := domain.Actions{}
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		podcasts, err := loadAll(ctx, req.Podcasts, s.podcasts.Get)
		if err != nil {
			return err
		}

		groups := make([][]*domain.Episode, 0, len(req.Groups))
		for _, ids := range req.Groups {
			group, err := loadAll(ctx, ids, s.episodes.Get)
			if err != nil {
				return err
			}
			groups = append(groups, group)
		}

		merger, err := NewPodcastMerger(podcasts, actions, groups, s.engine, req.KeepOld)
		if err != nil {
			return err
		}
		_, err = merger.Merge(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("podcast merge failed", "target", req.Podcasts[0], "error", err)
		return nil, err
	}

	stats := s.finish(ctx, domain.KindPodcast, req.Podcasts[0], req.Podcasts[1:], actions, startTime)
	return stats, nil
}

// MergeEpisodes merges req.Aliases into req.Target in a single transaction.
func (s *MergeService) MergeEpisodes(ctx context.Context, req domain.EpisodeMergeRequest) (*domain.MergeStats, error) {
	startTime := time.Now()
	s.logger.Info("starting episode merge",
		"target", req.Target,
		"aliases", req.Aliases,
		"keep_old", req.KeepOld,
	)

	actions := domain.Actions{}
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		target, err := s.episodes.Get(ctx, req.Target)
		if err != nil {
			return fmt.Errorf("load %s: %w", req.Target, err)
		}
		aliases, err := loadAll(ctx, req.Aliases, s.episodes.Get)
		if err != nil {
			return err
		}

		_, err = s.engine.Migrator(actions).Merge(ctx, target, mergeables(aliases), req.KeepOld)
		return err
	})
	if err != nil {
		s.logger.Error("episode merge failed", "target", req.Target, "error", err)
		return nil, err
	}

	stats := s.finish(ctx, domain.KindEpisode, req.Target, req.Aliases, actions, startTime)
	return stats, nil
}

func (s *MergeService) finish(
	ctx context.Context,
	kind domain.Kind,
	target uuid.UUID,
	aliases []uuid.UUID,
	actions domain.Actions,
	startTime time.Time,
) *domain.MergeStats {
	stats := &domain.MergeStats{
		Kind:     kind,
		Target:   target,
		Aliases:  aliases,
		Actions:  actions,
		Skipped:  actions[domain.ActionSkipConflict],
		Duration: time.Since(startTime),
	}

	s.logger.Info("merge completed",
		"kind", kind,
		"target", target,
		"actions", actions,
		"skipped", stats.Skipped,
		"duration", stats.Duration,
	)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, stats); err != nil {
			s.logger.Warn("failed to publish merge event", "target", target, "error", err)
		}
	}
	return stats
}

func loadAll[T any](ctx context.Context, ids []uuid.UUID, get func(context.Context, uuid.UUID) (T, error)) ([]T, error) {
	items := make([]T, 0, len(ids))
	for _, id := range ids {
		item, err := get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", id, err)
		}
		items = append(items, item)
	}
	return items, nil
}
