package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"podmerge/internal/domain"
)

type EpisodeStore struct {
	db *sqlx.DB
}

func NewEpisodeStore(db *sqlx.DB) *EpisodeStore {
	return &EpisodeStore{db: db}
}

const episodeColumns = `id, podcast_id, title, subtitle, description, link, guid, author,
	mimetypes, duration, released, created_at, updated_at`

func (s *EpisodeStore) Create(ctx context.Context, episode *domain.Episode) error {
	if episode.ID == uuid.Nil {
		episode.ID = uuid.New()
	}

	query := `
		INSERT INTO episodes (
			id, podcast_id, title, subtitle, description, link, guid, author,
			mimetypes, duration, released
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING created_at, updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		episode.ID,
		episode.PodcastID,
		episode.Title,
		episode.Subtitle,
		episode.Description,
		episode.Link,
		episode.GUID,
		episode.Author,
		episode.MimeTypes,
		episode.Duration,
		episode.Released,
	).Scan(&episode.CreatedAt, &episode.UpdatedAt)
	return translateError(err)
}

func (s *EpisodeStore) Get(ctx context.Context, id uuid.UUID) (*domain.Episode, error) {
	var episode domain.Episode
	query := `SELECT ` + episodeColumns + ` FROM episodes WHERE id = $1`

	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &episode, query, id); err != nil {
		return nil, translateError(err)
	}
	return &episode, nil
}

func (s *EpisodeStore) ListByPodcast(ctx context.Context, podcastID uuid.UUID) ([]*domain.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM episodes WHERE podcast_id = $1 ORDER BY created_at, id`

	var episodes []*domain.Episode
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &episodes, query, podcastID)
	return episodes, translateError(err)
}

func (s *EpisodeStore) Update(ctx context.Context, episode *domain.Episode) error {
	query := `
		UPDATE episodes SET
			podcast_id = $2,
			title = $3,
			subtitle = $4,
			description = $5,
			link = $6,
			guid = $7,
			author = $8,
			mimetypes = $9,
			duration = $10,
			released = $11,
			updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		episode.ID,
		episode.PodcastID,
		episode.Title,
		episode.Subtitle,
		episode.Description,
		episode.Link,
		episode.GUID,
		episode.Author,
		episode.MimeTypes,
		episode.Duration,
		episode.Released,
	)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}

func (s *EpisodeStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM episodes WHERE id = $1", id)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}
