package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"podmerge/internal/domain"
)

// PodcastMerger merges duplicate podcasts into the first one, together with
// groups of duplicate episodes.
type PodcastMerger struct {
	podcasts []*domain.Podcast
	groups   [][]*domain.Episode
	actions  domain.Actions
	states   EpisodeStateStore
	episodes EpisodeStore
	migrator *Migrator
	keepOld  bool
	logger   *slog.Logger
}

// NewPodcastMerger checks that at least two distinct podcasts are given.
// podcasts[0] becomes the target. With keepOld aliases are merged but not
// deleted.
func NewPodcastMerger(podcasts []*domain.Podcast, actions domain.Actions, groups [][]*domain.Episode, engine *Engine, keepOld bool) (*PodcastMerger, error) {
	if len(podcasts) < 2 {
		var id uuid.UUID
		if len(podcasts) == 1 {
			id = podcasts[0].ID
		}
		return nil, &domain.SelfMergeError{Kind: domain.KindPodcast, ID: id}
	}

	seen := make(map[uuid.UUID]struct{}, len(podcasts))
	for _, p := range podcasts {
		if _, ok := seen[p.ID]; ok {
			return nil, &domain.SelfMergeError{Kind: domain.KindPodcast, ID: p.ID}
		}
		seen[p.ID] = struct{}{}
	}

	return &PodcastMerger{
		podcasts: podcasts,
		groups:   groups,
		actions:  actions,
		states:   engine.stores.States,
		episodes: engine.stores.Episodes,
		migrator: engine.Migrator(actions),
		keepOld:  keepOld,
		logger:   engine.logger.With("target", podcasts[0].ID),
	}, nil
}

func (m *PodcastMerger) Merge(ctx context.Context) (*domain.Podcast, error) {
	target, aliases := m.podcasts[0], m.podcasts[1:]

	for i, group := range m.groups {
		if len(group) == 0 {
			continue
		}
		m.logger.Debug("merging episode group", "group", i, "episode", group[0].ID, "size", len(group))

		if _, err := m.migrator.Merge(ctx, group[0], mergeables(group[1:]), m.keepOld); err != nil {
			return nil, fmt.Errorf("merge episode group %d: %w", i, err)
		}
	}

	for _, alias := range aliases {
		if err := m.reassignEpisodes(ctx, target, alias); err != nil {
			return nil, err
		}
	}

	if _, err := m.migrator.Merge(ctx, target, mergeables(aliases), m.keepOld); err != nil {
		return nil, fmt.Errorf("merge podcasts: %w", err)
	}
	return target, nil
}

// reassignEpisodes points the states of every remaining episode of alias
// at target. The episodes themselves move with the podcast merge.
func (m *PodcastMerger) reassignEpisodes(ctx context.Context, target, alias *domain.Podcast) error {
	episodes, err := m.episodes.ListByPodcast(ctx, alias.ID)
	if err != nil {
		return fmt.Errorf("list episodes of %s: %w", alias.ID, err)
	}

	for _, ep := range episodes {
		m.actions.Inc(domain.ActionReassignEpisode)

		states, err := m.states.ListStates(ctx, ep.ID)
		if err != nil {
			return fmt.Errorf("list states of episode %s: %w", ep.ID, err)
		}
		for _, state := range states {
			if err := m.states.UpdateOwner(ctx, state, target.ID, nil); err != nil {
				return fmt.Errorf("reassign state %s: %w", state.ID, err)
			}
			m.actions.Inc(domain.ActionReassignEpisodeState)
		}
	}
	return nil
}

func mergeables[T domain.Mergeable](items []T) []domain.Mergeable {
	out := make([]domain.Mergeable, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
