package domain

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	DeviceID  int64     `db:"device_id"`
	PodcastID uuid.UUID `db:"podcast_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (s *Subscription) ObjectKind() Kind { return KindSubscription }

type HistoryEntry struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	PodcastID uuid.UUID  `db:"podcast_id"`
	EpisodeID *uuid.UUID `db:"episode_id"`
	Action    string     `db:"action"`
	Timestamp time.Time  `db:"timestamp"`
}

func (h *HistoryEntry) ObjectKind() Kind { return KindHistoryEntry }

// Publisher links a user allowed to publish a podcast.
type Publisher struct {
	UserID    int64     `db:"user_id"`
	PodcastID uuid.UUID `db:"podcast_id"`
}

func (p *Publisher) ObjectKind() Kind { return KindPublisher }
