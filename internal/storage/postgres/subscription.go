package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"podmerge/internal/domain"
)

type SubscriptionStore struct {
	db *sqlx.DB
}

func NewSubscriptionStore(db *sqlx.DB) *SubscriptionStore {
	return &SubscriptionStore{db: db}
}

func (s *SubscriptionStore) Create(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, device_id, podcast_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		sub.UserID, sub.DeviceID, sub.PodcastID,
	).Scan(&sub.ID, &sub.CreatedAt)
	return translateError(err)
}

func (s *SubscriptionStore) ListByPodcast(ctx context.Context, podcastID uuid.UUID) ([]*domain.Subscription, error) {
	query := `
		SELECT id, user_id, device_id, podcast_id, created_at
		FROM subscriptions
		WHERE podcast_id = $1
		ORDER BY id`

	var subs []*domain.Subscription
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &subs, query, podcastID)
	return subs, translateError(err)
}

func (s *SubscriptionStore) Update(ctx context.Context, sub *domain.Subscription) error {
	query := `UPDATE subscriptions SET user_id = $2, device_id = $3, podcast_id = $4 WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, sub.ID, sub.UserID, sub.DeviceID, sub.PodcastID)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}

func (s *SubscriptionStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM subscriptions WHERE id = $1", id)
	return translateError(err)
}
