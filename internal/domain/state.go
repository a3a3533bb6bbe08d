package domain

import (
	"time"

	"github.com/google/uuid"
)

// EpisodeState holds a user's playback actions for one episode. There is
// at most one state per (user, episode).
type EpisodeState struct {
	ID        uuid.UUID `db:"id"`
	UserID    int64     `db:"user_id"`
	PodcastID uuid.UUID `db:"podcast_id"`
	EpisodeID uuid.UUID `db:"episode_id"`
	UpdatedAt time.Time `db:"updated_at"`
}

type EpisodeAction struct {
	ID        int64     `db:"id"`
	StateID   uuid.UUID `db:"state_id"`
	Action    string    `db:"action"` // download, play, delete or new
	Timestamp time.Time `db:"timestamp"`
	Device    string    `db:"device"`
	Started   *int      `db:"started"`
	Position  *int      `db:"position"`
	Total     *int      `db:"total"`
}
