package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"podmerge/internal/domain"
)

// QueueProcessor runs merge requests queued by maintenance tooling.
type QueueProcessor struct {
	requests  RequestStore
	merger    Merger
	batchSize int
	logger    *slog.Logger
}

func NewQueueProcessor(requests RequestStore, merger Merger, batchSize int, logger *slog.Logger) *QueueProcessor {
	return &QueueProcessor{
		requests:  requests,
		merger:    merger,
		batchSize: batchSize,
		logger:    logger.With("component", "queue"),
	}
}

func (q *QueueProcessor) Enqueue(ctx context.Context, req *domain.MergeRequest) error {
	if req.Kind != domain.KindPodcast && req.Kind != domain.KindEpisode {
		return &domain.UnsupportedTypeError{Op: "enqueue", Kind: req.Kind}
	}
	if len(req.AliasIDs) == 0 {
		return &domain.SelfMergeError{Kind: req.Kind, ID: req.TargetID}
	}
	if req.Kind == domain.KindEpisode && len(req.Groups) > 0 {
		return errors.New("episode merges take no episode groups")
	}

	if err := q.requests.Enqueue(ctx, req); err != nil {
		return fmt.Errorf("enqueue merge request: %w", err)
	}
	q.logger.Info("merge request queued", "id", req.ID, "kind", req.Kind, "target", req.TargetID)
	return nil
}

// ProcessPending runs up to one batch of pending requests, oldest first. A
// failed merge marks its request as failed and does not stop the batch.
func (q *QueueProcessor) ProcessPending(ctx context.Context) (*domain.QueueStats, error) {
	startTime := time.Now()

	pending, err := q.requests.ListPending(ctx, q.batchSize)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}

	stats := &domain.QueueStats{}
	for _, req := range pending {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		mergeStats, err := q.run(ctx, req)
		if err != nil {
			q.logger.Warn("merge request failed", "id", req.ID, "error", err)
			stats.Failed++
			if err := q.requests.MarkFailed(ctx, req.ID, err.Error()); err != nil {
				return stats, fmt.Errorf("mark request %d failed: %w", req.ID, err)
			}
			continue
		}

		stats.Processed++
		stats.Skipped += mergeStats.Skipped
		if err := q.requests.MarkDone(ctx, req.ID); err != nil {
			return stats, fmt.Errorf("mark request %d done: %w", req.ID, err)
		}
	}

	stats.Duration = time.Since(startTime)
	if len(pending) > 0 {
		q.logger.Info("merge queue processed",
			"processed", stats.Processed,
			"failed", stats.Failed,
			"skipped", stats.Skipped,
			"duration", stats.Duration,
		)
	}
	return stats, nil
}

func (q *QueueProcessor) run(ctx context.Context, req *domain.MergeRequest) (*domain.MergeStats, error) {
	switch req.Kind {
	case domain.KindPodcast:
		return q.merger.MergePodcasts(ctx, PodcastRequest(req))
	case domain.KindEpisode:
		return q.merger.MergeEpisodes(ctx, domain.EpisodeMergeRequest{
			Target:  req.TargetID,
			Aliases: req.AliasIDs,
			KeepOld: req.KeepOld,
		})
	default:
		return nil, &domain.UnsupportedTypeError{Op: "merge request", Kind: req.Kind}
	}
}

// PodcastRequest converts a queued request into a podcast merge.
func PodcastRequest(req *domain.MergeRequest) domain.PodcastMergeRequest {
	podcasts := append([]uuid.UUID{req.TargetID}, req.AliasIDs...)
	return domain.PodcastMergeRequest{
		Podcasts: podcasts,
		Groups:   req.Groups,
		KeepOld:  req.KeepOld,
	}
}
