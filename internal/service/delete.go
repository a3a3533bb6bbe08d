package service

import (
	"context"
	"fmt"

	"podmerge/internal/domain"
)

type deleteFunc func(ctx context.Context, primary, alias domain.Mergeable) error

// deletionHook runs right before an alias is deleted.
type deletionHook struct {
	episodes    *EpisodeMerger
	mergedUUIDs MergedUUIDStore
	table       map[domain.Kind]deleteFunc
}

func newDeletionHook(stores Stores, episodes *EpisodeMerger) *deletionHook {
	h := &deletionHook{
		episodes:    episodes,
		mergedUUIDs: stores.MergedUUIDs,
	}
	h.table = map[domain.Kind]deleteFunc{
		domain.KindEpisode: h.episode,
		domain.KindPodcast: h.recordAlias,
	}
	return h
}

func (h *deletionHook) BeforeDelete(ctx context.Context, primary, alias domain.Mergeable) error {
	kind := alias.Ref().Kind
	fn, ok := h.table[kind]
	if !ok {
		return &domain.UnsupportedTypeError{Op: "delete", Kind: kind}
	}
	return fn(ctx, primary, alias)
}

func (h *deletionHook) episode(ctx context.Context, primary, alias domain.Mergeable) error {
	e1, ok1 := primary.(*domain.Episode)
	e2, ok2 := alias.(*domain.Episode)
	if !ok1 || !ok2 {
		return unexpected("delete episode", alias)
	}

	if err := h.episodes.Merge(ctx, e1, e2); err != nil {
		return fmt.Errorf("merge episode states: %w", err)
	}
	return h.recordAlias(ctx, primary, alias)
}

func (h *deletionHook) recordAlias(ctx context.Context, primary, alias domain.Mergeable) error {
	if err := h.mergedUUIDs.Record(ctx, alias.Ref().ID, primary.Ref()); err != nil {
		return fmt.Errorf("record merged uuid %s: %w", alias.Ref().ID, err)
	}
	return nil
}
