package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"podmerge/internal/domain"
)

type PodcastStore struct {
	db *sqlx.DB
}

func NewPodcastStore(db *sqlx.DB) *PodcastStore {
	return &PodcastStore{db: db}
}

const podcastColumns = `id, title, subtitle, description, link, language, author, logo_url,
	license, twitter, last_update, created_at, updated_at`

func (s *PodcastStore) Create(ctx context.Context, podcast *domain.Podcast) error {
	if podcast.ID == uuid.Nil {
		podcast.ID = uuid.New()
	}

	query := `
		INSERT INTO podcasts (
			id, title, subtitle, description, link, language, author, logo_url,
			license, twitter, last_update
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		podcast.ID,
		podcast.Title,
		podcast.Subtitle,
		podcast.Description,
		podcast.Link,
		podcast.Language,
		podcast.Author,
		podcast.LogoURL,
		podcast.License,
		podcast.Twitter,
		podcast.LastUpdate,
	).Scan(&podcast.CreatedAt, &podcast.UpdatedAt)
	return translateError(err)
}

func (s *PodcastStore) Get(ctx context.Context, id uuid.UUID) (*domain.Podcast, error) {
	var podcast domain.Podcast
	query := `SELECT ` + podcastColumns + ` FROM podcasts WHERE id = $1`

	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &podcast, query, id); err != nil {
		return nil, translateError(err)
	}
	return &podcast, nil
}

func (s *PodcastStore) Update(ctx context.Context, podcast *domain.Podcast) error {
	query := `
		UPDATE podcasts SET
			title = $2,
			subtitle = $3,
			description = $4,
			link = $5,
			language = $6,
			author = $7,
			logo_url = $8,
			license = $9,
			twitter = $10,
			last_update = $11,
			updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		podcast.ID,
		podcast.Title,
		podcast.Subtitle,
		podcast.Description,
		podcast.Link,
		podcast.Language,
		podcast.Author,
		podcast.LogoURL,
		podcast.License,
		podcast.Twitter,
		podcast.LastUpdate,
	)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}

func (s *PodcastStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM podcasts WHERE id = $1", id)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}
