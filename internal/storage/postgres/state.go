package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"podmerge/internal/domain"
)

// EpisodeStateStore is the repository of per-user episode states and their
// recorded actions.
type EpisodeStateStore struct {
	db *sqlx.DB
}

func NewEpisodeStateStore(db *sqlx.DB) *EpisodeStateStore {
	return &EpisodeStateStore{db: db}
}

func (s *EpisodeStateStore) Create(ctx context.Context, state *domain.EpisodeState) error {
	if state.ID == uuid.Nil {
		state.ID = uuid.New()
	}

	query := `
		INSERT INTO episode_states (id, user_id, podcast_id, episode_id)
		VALUES ($1, $2, $3, $4)
		RETURNING updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		state.ID, state.UserID, state.PodcastID, state.EpisodeID,
	).Scan(&state.UpdatedAt)
	return translateError(err)
}

func (s *EpisodeStateStore) AddAction(ctx context.Context, action *domain.EpisodeAction) error {
	query := `
		INSERT INTO episode_actions (state_id, action, timestamp, device, started, position, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (state_id, action, timestamp, device) DO NOTHING
		RETURNING id`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		action.StateID,
		action.Action,
		action.Timestamp,
		action.Device,
		action.Started,
		action.Position,
		action.Total,
	).Scan(&action.ID)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, domain.ErrNotFound) {
			// identical action already recorded
			return nil
		}
	}
	return err
}

func (s *EpisodeStateStore) ListStates(ctx context.Context, episodeID uuid.UUID) ([]*domain.EpisodeState, error) {
	query := `
		SELECT id, user_id, podcast_id, episode_id, updated_at
		FROM episode_states
		WHERE episode_id = $1
		ORDER BY user_id`

	var states []*domain.EpisodeState
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &states, query, episodeID)
	return states, translateError(err)
}

func (s *EpisodeStateStore) ListActions(ctx context.Context, stateID uuid.UUID) ([]domain.EpisodeAction, error) {
	query := `
		SELECT id, state_id, action, timestamp, device, started, position, total
		FROM episode_actions
		WHERE state_id = $1
		ORDER BY timestamp, id`

	var actions []domain.EpisodeAction
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &actions, query, stateID)
	return actions, translateError(err)
}

// UpdateOwner re-points a state to another podcast and, when episodeID is
// set, to another episode.
func (s *EpisodeStateStore) UpdateOwner(ctx context.Context, state *domain.EpisodeState, podcastID uuid.UUID, episodeID *uuid.UUID) error {
	newEpisode := state.EpisodeID
	if episodeID != nil {
		newEpisode = *episodeID
	}

	query := `
		UPDATE episode_states SET
			podcast_id = $2,
			episode_id = $3,
			updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, state.ID, podcastID, newEpisode)
	if err != nil {
		return translateError(err)
	}
	if err := expectAffected(res); err != nil {
		return err
	}

	state.PodcastID = podcastID
	state.EpisodeID = newEpisode
	return nil
}

// Merge copies the actions of state2 into state. Actions already present
// in state are not duplicated. state2 is left untouched.
func (s *EpisodeStateStore) Merge(ctx context.Context, state, state2 *domain.EpisodeState) error {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO episode_actions (state_id, action, timestamp, device, started, position, total)
		SELECT $1, action, timestamp, device, started, position, total
		FROM episode_actions
		WHERE state_id = $2
		ON CONFLICT (state_id, action, timestamp, device) DO NOTHING`

	if _, err := exec.ExecContext(ctx, query, state.ID, state2.ID); err != nil {
		return translateError(err)
	}

	_, err := exec.ExecContext(ctx, "UPDATE episode_states SET updated_at = NOW() WHERE id = $1", state.ID)
	return translateError(err)
}

func (s *EpisodeStateStore) Delete(ctx context.Context, state *domain.EpisodeState) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM episode_states WHERE id = $1", state.ID)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}
