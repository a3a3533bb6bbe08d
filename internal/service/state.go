package service

import (
	"context"
	"fmt"
	"log/slog"

	"podmerge/internal/domain"
)

// StateMerger merges two playback states of the same user.
type StateMerger struct {
	states  EpisodeStateStore
	actions domain.Actions
	logger  *slog.Logger
}

func NewStateMerger(states EpisodeStateStore, actions domain.Actions, logger *slog.Logger) *StateMerger {
	return &StateMerger{
		states:  states,
		actions: actions,
		logger:  logger,
	}
}

// Merge moves the actions of state2 into state and deletes state2.
func (m *StateMerger) Merge(ctx context.Context, state, state2 *domain.EpisodeState) error {
	if state.ID == state2.ID {
		return &domain.SelfMergeError{Kind: domain.KindEpisodeState, ID: state.ID}
	}
	if state.UserID != state2.UserID {
		return &domain.OwnerMismatchError{
			State:     state.ID,
			Other:     state2.ID,
			User:      state.UserID,
			OtherUser: state2.UserID,
		}
	}

	if err := m.states.Merge(ctx, state, state2); err != nil {
		return fmt.Errorf("merge actions of state %s: %w", state2.ID, err)
	}
	if err := m.states.Delete(ctx, state2); err != nil {
		return fmt.Errorf("delete state %s: %w", state2.ID, err)
	}

	m.actions.Inc(domain.ActionMergeEpisodeState)
	m.logger.Debug("merged episode state",
		"user_id", state.UserID,
		"state", state.ID,
		"merged", state2.ID,
	)
	return nil
}
