package service

import (
	"context"
	"fmt"

	"podmerge/internal/domain"
)

type reassignFunc func(ctx context.Context, obj domain.Related, owner domain.Mergeable) error

// reassignHook fixes up denormalized fields of an object that was just
// re-pointed to a new owner.
type reassignHook struct {
	attachments []AttachmentStore
	bestEffort  *bestEffort
	table       map[domain.Kind]reassignFunc
}

func newReassignHook(stores Stores, be *bestEffort) *reassignHook {
	h := &reassignHook{
		attachments: []AttachmentStore{stores.URLs, stores.Slugs},
		bestEffort:  be,
	}
	h.table = map[domain.Kind]reassignFunc{
		domain.KindURL:          h.attachment(stores.URLs),
		domain.KindSlug:         h.attachment(stores.Slugs),
		domain.KindEpisode:      h.episode,
		domain.KindSubscription: noReassign,
		domain.KindHistoryEntry: noReassign,
		domain.KindMergedUUID:   noReassign,
		domain.KindPublisher:    noReassign,
	}
	return h
}

func (h *reassignHook) Reassign(ctx context.Context, obj domain.Related, owner domain.Mergeable) error {
	fn, ok := h.table[obj.ObjectKind()]
	if !ok {
		return &domain.UnsupportedTypeError{Op: "reassign", Kind: obj.ObjectKind()}
	}
	return fn(ctx, obj, owner)
}

func noReassign(context.Context, domain.Related, domain.Mergeable) error {
	return nil
}

// attachment moves the item into the owner's scope and appends it after
// the owner's existing items.
func (h *reassignHook) attachment(store AttachmentStore) reassignFunc {
	return func(ctx context.Context, obj domain.Related, owner domain.Mergeable) error {
		a, ok := obj.(*domain.Attachment)
		if !ok {
			return unexpected("reassign", obj)
		}

		maxOrder, err := store.MaxOrder(ctx, owner.Ref())
		if err != nil {
			return fmt.Errorf("max %s order: %w", store.Kind(), err)
		}

		a.Scope = owner.Scope()
		a.Order = maxOrder + 1
		return nil
	}
}

// episode moves the URLs and slugs of an episode into the scope of its new
// podcast. Items already taken in that scope are dropped.
func (h *reassignHook) episode(ctx context.Context, obj domain.Related, owner domain.Mergeable) error {
	ep, ok := obj.(*domain.Episode)
	if !ok {
		return unexpected("reassign", obj)
	}
	podcast, ok := owner.(*domain.Podcast)
	if !ok {
		return &domain.UnsupportedTypeError{Op: "reassign episode to", Kind: owner.Ref().Kind}
	}

	scope := podcast.AsScope()
	for _, store := range h.attachments {
		items, err := store.ListByOwner(ctx, ep.Ref())
		if err != nil {
			return fmt.Errorf("list episode %ss: %w", store.Kind(), err)
		}

		for _, item := range items {
			item.Scope = scope
			what := fmt.Sprintf("%s %q", store.Kind(), item.Value)
			err := h.bestEffort.save(ctx, what,
				func(ctx context.Context) error { return store.Update(ctx, item) },
				func(ctx context.Context) error { return store.Delete(ctx, item.ID) },
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
