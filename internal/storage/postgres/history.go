package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"podmerge/internal/domain"
)

type HistoryStore struct {
	db *sqlx.DB
}

func NewHistoryStore(db *sqlx.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

const historyColumns = `id, user_id, podcast_id, episode_id, action, timestamp`

func (s *HistoryStore) Create(ctx context.Context, entry *domain.HistoryEntry) error {
	query := `
		INSERT INTO history_entries (user_id, podcast_id, episode_id, action, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		entry.UserID, entry.PodcastID, entry.EpisodeID, entry.Action, entry.Timestamp,
	).Scan(&entry.ID)
	return translateError(err)
}

func (s *HistoryStore) ListByPodcast(ctx context.Context, podcastID uuid.UUID) ([]*domain.HistoryEntry, error) {
	query := `SELECT ` + historyColumns + ` FROM history_entries WHERE podcast_id = $1 ORDER BY timestamp, id`

	var entries []*domain.HistoryEntry
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, query, podcastID)
	return entries, translateError(err)
}

func (s *HistoryStore) ListByEpisode(ctx context.Context, episodeID uuid.UUID) ([]*domain.HistoryEntry, error) {
	query := `SELECT ` + historyColumns + ` FROM history_entries WHERE episode_id = $1 ORDER BY timestamp, id`

	var entries []*domain.HistoryEntry
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, query, episodeID)
	return entries, translateError(err)
}

func (s *HistoryStore) Update(ctx context.Context, entry *domain.HistoryEntry) error {
	query := `
		UPDATE history_entries SET
			user_id = $2,
			podcast_id = $3,
			episode_id = $4,
			action = $5,
			timestamp = $6
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.PodcastID, entry.EpisodeID, entry.Action, entry.Timestamp,
	)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}

func (s *HistoryStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM history_entries WHERE id = $1", id)
	return translateError(err)
}
