package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"podmerge/internal/domain"
)

type PodcastStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Podcast, error)
	Update(ctx context.Context, podcast *domain.Podcast) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EpisodeStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Episode, error)
	ListByPodcast(ctx context.Context, podcastID uuid.UUID) ([]*domain.Episode, error)
	Update(ctx context.Context, episode *domain.Episode) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AttachmentStore persists either URLs or slugs, as reported by Kind.
type AttachmentStore interface {
	Kind() domain.Kind
	ListByOwner(ctx context.Context, owner domain.Ref) ([]*domain.Attachment, error)
	MaxOrder(ctx context.Context, owner domain.Ref) (int, error)
	Update(ctx context.Context, a *domain.Attachment) error
	Delete(ctx context.Context, id int64) error
}

type MergedUUIDStore interface {
	Record(ctx context.Context, id uuid.UUID, owner domain.Ref) error
	ListByOwner(ctx context.Context, owner domain.Ref) ([]*domain.MergedUUID, error)
	Update(ctx context.Context, m *domain.MergedUUID) error
}

type EpisodeStateStore interface {
	ListStates(ctx context.Context, episodeID uuid.UUID) ([]*domain.EpisodeState, error)
	UpdateOwner(ctx context.Context, state *domain.EpisodeState, podcastID uuid.UUID, episodeID *uuid.UUID) error
	Merge(ctx context.Context, state, state2 *domain.EpisodeState) error
	Delete(ctx context.Context, state *domain.EpisodeState) error
}

type SubscriptionStore interface {
	ListByPodcast(ctx context.Context, podcastID uuid.UUID) ([]*domain.Subscription, error)
	Update(ctx context.Context, sub *domain.Subscription) error
	Delete(ctx context.Context, id int64) error
}

type HistoryStore interface {
	ListByPodcast(ctx context.Context, podcastID uuid.UUID) ([]*domain.HistoryEntry, error)
	ListByEpisode(ctx context.Context, episodeID uuid.UUID) ([]*domain.HistoryEntry, error)
	Update(ctx context.Context, entry *domain.HistoryEntry) error
	Delete(ctx context.Context, id int64) error
}

type PublisherStore interface {
	ListByPodcast(ctx context.Context, podcastID uuid.UUID) ([]*domain.Publisher, error)
	Add(ctx context.Context, podcastID uuid.UUID, userID int64) error
	Remove(ctx context.Context, podcastID uuid.UUID, userID int64) error
}

type RequestStore interface {
	Enqueue(ctx context.Context, req *domain.MergeRequest) error
	ListPending(ctx context.Context, limit int) ([]*domain.MergeRequest, error)
	MarkDone(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, reason string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	WithSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

// Merger runs merges for the queue worker.
type Merger interface {
	MergePodcasts(ctx context.Context, req domain.PodcastMergeRequest) (*domain.MergeStats, error)
	MergeEpisodes(ctx context.Context, req domain.EpisodeMergeRequest) (*domain.MergeStats, error)
}

type Publisher interface {
	Publish(ctx context.Context, stats *domain.MergeStats) error
	Close() error
}
