package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"podmerge/internal/domain"
)

// EpisodeMerger merges the user states of one episode into another.
//
// Each episode must hold at most one state per user. The schema enforces
// this with a unique constraint on (user_id, episode_id).
type EpisodeMerger struct {
	states  EpisodeStateStore
	merger  *StateMerger
	actions domain.Actions
	logger  *slog.Logger
}

func NewEpisodeMerger(states EpisodeStateStore, actions domain.Actions, logger *slog.Logger) *EpisodeMerger {
	return &EpisodeMerger{
		states:  states,
		merger:  NewStateMerger(states, actions, logger),
		actions: actions,
		logger:  logger,
	}
}

func (m *EpisodeMerger) Merge(ctx context.Context, episode, episode2 *domain.Episode) error {
	if episode.ID == episode2.ID {
		return &domain.SelfMergeError{Kind: domain.KindEpisode, ID: episode.ID}
	}

	states, err := m.sortedStates(ctx, episode)
	if err != nil {
		return err
	}
	states2, err := m.sortedStates(ctx, episode2)
	if err != nil {
		return err
	}

	byUser := func(s *domain.EpisodeState) int64 { return s.UserID }

	return mergeJoin(states, states2, byUser, func(s1, s2 *domain.EpisodeState) error {
		switch {
		case s2 == nil:
			return nil
		case s1 == nil:
			if err := m.states.UpdateOwner(ctx, s2, episode.PodcastID, &episode.ID); err != nil {
				return fmt.Errorf("move state %s: %w", s2.ID, err)
			}
			m.actions.Inc(domain.ActionMoveEpisodeState)
			m.logger.Debug("moved episode state", "user_id", s2.UserID, "state", s2.ID, "episode", episode.ID)
			return nil
		default:
			return m.merger.Merge(ctx, s1, s2)
		}
	})
}

func (m *EpisodeMerger) sortedStates(ctx context.Context, episode *domain.Episode) ([]*domain.EpisodeState, error) {
	states, err := m.states.ListStates(ctx, episode.ID)
	if err != nil {
		return nil, fmt.Errorf("list states of episode %s: %w", episode.ID, err)
	}
	slices.SortFunc(states, func(a, b *domain.EpisodeState) int {
		return cmp.Compare(a.UserID, b.UserID)
	})
	return states, nil
}
