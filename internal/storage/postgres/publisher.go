package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"podmerge/internal/domain"
)

// PublisherStore manages the many-to-many link between podcasts and the
// users allowed to publish them.
type PublisherStore struct {
	db *sqlx.DB
}

func NewPublisherStore(db *sqlx.DB) *PublisherStore {
	return &PublisherStore{db: db}
}

func (s *PublisherStore) ListByPodcast(ctx context.Context, podcastID uuid.UUID) ([]*domain.Publisher, error) {
	query := `SELECT user_id, podcast_id FROM podcast_publishers WHERE podcast_id = $1 ORDER BY user_id`

	var publishers []*domain.Publisher
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &publishers, query, podcastID)
	return publishers, translateError(err)
}

func (s *PublisherStore) Add(ctx context.Context, podcastID uuid.UUID, userID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"INSERT INTO podcast_publishers (podcast_id, user_id) VALUES ($1, $2)",
		podcastID, userID,
	)
	return translateError(err)
}

func (s *PublisherStore) Remove(ctx context.Context, podcastID uuid.UUID, userID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM podcast_publishers WHERE podcast_id = $1 AND user_id = $2",
		podcastID, userID,
	)
	return translateError(err)
}
