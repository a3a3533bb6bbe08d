package service

import (
	"context"
	"errors"
	"fmt"

	"podmerge/internal/domain"
)

// Stores groups the repositories the merge engine works on.
type Stores struct {
	Podcasts      PodcastStore
	Episodes      EpisodeStore
	URLs          AttachmentStore
	Slugs         AttachmentStore
	MergedUUIDs   MergedUUIDStore
	States        EpisodeStateStore
	Subscriptions SubscriptionStore
	History       HistoryStore
	Publishers    PublisherStore
}

// Relation is an incoming reference to a mergeable entity. Objects are
// listed for an owner, re-pointed in memory, then saved. An object that
// cannot be saved without violating a uniqueness constraint is discarded.
type Relation interface {
	Name() string
	Accepts(kind domain.Kind) bool
	List(ctx context.Context, owner domain.Mergeable) ([]domain.Related, error)
	Repoint(obj domain.Related, owner domain.Mergeable) error
	Save(ctx context.Context, obj domain.Related) error
	Discard(ctx context.Context, obj domain.Related) error
}

// LinkRelation is a many-to-many relation. Save adds the link to the new
// owner, Detach removes it from the old one.
type LinkRelation interface {
	Relation
	Detach(ctx context.Context, obj domain.Related, from domain.Mergeable) error
}

// EntityStore persists the primary and deletes aliases of one kind.
type EntityStore interface {
	Save(ctx context.Context, m domain.Mergeable) error
	Delete(ctx context.Context, m domain.Mergeable) error
}

// Registry lists the relations pointing at each mergeable kind.
type Registry struct {
	entities   map[domain.Kind]EntityStore
	reverse    map[domain.Kind][]Relation
	manyToMany map[domain.Kind][]LinkRelation
	generic    []Relation
}

// NewRegistry builds the relation table of the podcast schema.
func NewRegistry(stores Stores) *Registry {
	return &Registry{
		entities: map[domain.Kind]EntityStore{
			domain.KindPodcast: podcastEntity{stores.Podcasts},
			domain.KindEpisode: episodeEntity{stores.Episodes},
		},
		reverse: map[domain.Kind][]Relation{
			domain.KindPodcast: {
				episodeRelation{stores.Episodes},
				subscriptionRelation{stores.Subscriptions},
				historyPodcastRelation{stores.History},
			},
			domain.KindEpisode: {
				historyEpisodeRelation{stores.History},
			},
		},
		manyToMany: map[domain.Kind][]LinkRelation{
			domain.KindPodcast: {publisherRelation{stores.Publishers}},
		},
		generic: []Relation{
			attachmentRelation{stores.URLs},
			attachmentRelation{stores.Slugs},
			mergedUUIDRelation{stores.MergedUUIDs},
		},
	}
}

func (r *Registry) Entity(kind domain.Kind) (EntityStore, bool) {
	e, ok := r.entities[kind]
	return e, ok
}

func (r *Registry) Reverse(kind domain.Kind) []Relation {
	return r.reverse[kind]
}

func (r *Registry) ManyToMany(kind domain.Kind) []LinkRelation {
	return r.manyToMany[kind]
}

// Generic returns the generic relations that may point at kind.
func (r *Registry) Generic(kind domain.Kind) []Relation {
	var rels []Relation
	for _, rel := range r.generic {
		if rel.Accepts(kind) {
			rels = append(rels, rel)
		}
	}
	return rels
}

func unexpected(rel string, obj any) error {
	return fmt.Errorf("%s: unexpected object %T", rel, obj)
}

type podcastEntity struct {
	store PodcastStore
}

func (e podcastEntity) Save(ctx context.Context, m domain.Mergeable) error {
	p, ok := m.(*domain.Podcast)
	if !ok {
		return unexpected("podcast", m)
	}
	return e.store.Update(ctx, p)
}

func (e podcastEntity) Delete(ctx context.Context, m domain.Mergeable) error {
	return e.store.Delete(ctx, m.Ref().ID)
}

type episodeEntity struct {
	store EpisodeStore
}

func (e episodeEntity) Save(ctx context.Context, m domain.Mergeable) error {
	ep, ok := m.(*domain.Episode)
	if !ok {
		return unexpected("episode", m)
	}
	return e.store.Update(ctx, ep)
}

func (e episodeEntity) Delete(ctx context.Context, m domain.Mergeable) error {
	return e.store.Delete(ctx, m.Ref().ID)
}

type episodeRelation struct {
	store EpisodeStore
}

func (episodeRelation) Name() string { return "episode.podcast" }

func (episodeRelation) Accepts(kind domain.Kind) bool { return kind == domain.KindPodcast }

func (r episodeRelation) List(ctx context.Context, owner domain.Mergeable) ([]domain.Related, error) {
	episodes, err := r.store.ListByPodcast(ctx, owner.Ref().ID)
	if err != nil {
		return nil, err
	}
	return toRelated(episodes), nil
}

func (episodeRelation) Repoint(obj domain.Related, owner domain.Mergeable) error {
	ep, ok := obj.(*domain.Episode)
	if !ok {
		return unexpected("episode.podcast", obj)
	}
	ep.PodcastID = owner.Ref().ID
	return nil
}

func (r episodeRelation) Save(ctx context.Context, obj domain.Related) error {
	return r.store.Update(ctx, obj.(*domain.Episode))
}

func (r episodeRelation) Discard(ctx context.Context, obj domain.Related) error {
	return r.store.Delete(ctx, obj.(*domain.Episode).ID)
}

type subscriptionRelation struct {
	store SubscriptionStore
}

func (subscriptionRelation) Name() string { return "subscription.podcast" }

func (subscriptionRelation) Accepts(kind domain.Kind) bool { return kind == domain.KindPodcast }

func (r subscriptionRelation) List(ctx context.Context, owner domain.Mergeable) ([]domain.Related, error) {
	subs, err := r.store.ListByPodcast(ctx, owner.Ref().ID)
	if err != nil {
		return nil, err
	}
	return toRelated(subs), nil
}

func (subscriptionRelation) Repoint(obj domain.Related, owner domain.Mergeable) error {
	sub, ok := obj.(*domain.Subscription)
	if !ok {
		return unexpected("subscription.podcast", obj)
	}
	sub.PodcastID = owner.Ref().ID
	return nil
}

func (r subscriptionRelation) Save(ctx context.Context, obj domain.Related) error {
	return r.store.Update(ctx, obj.(*domain.Subscription))
}

func (r subscriptionRelation) Discard(ctx context.Context, obj domain.Related) error {
	return r.store.Delete(ctx, obj.(*domain.Subscription).ID)
}

type historyPodcastRelation struct {
	store HistoryStore
}

func (historyPodcastRelation) Name() string { return "history.podcast" }

func (historyPodcastRelation) Accepts(kind domain.Kind) bool { return kind == domain.KindPodcast }

func (r historyPodcastRelation) List(ctx context.Context, owner domain.Mergeable) ([]domain.Related, error) {
	entries, err := r.store.ListByPodcast(ctx, owner.Ref().ID)
	if err != nil {
		return nil, err
	}
	return toRelated(entries), nil
}

func (historyPodcastRelation) Repoint(obj domain.Related, owner domain.Mergeable) error {
	entry, ok := obj.(*domain.HistoryEntry)
	if !ok {
		return unexpected("history.podcast", obj)
	}
	entry.PodcastID = owner.Ref().ID
	return nil
}

func (r historyPodcastRelation) Save(ctx context.Context, obj domain.Related) error {
	return r.store.Update(ctx, obj.(*domain.HistoryEntry))
}

func (r historyPodcastRelation) Discard(ctx context.Context, obj domain.Related) error {
	return r.store.Delete(ctx, obj.(*domain.HistoryEntry).ID)
}

type historyEpisodeRelation struct {
	store HistoryStore
}

func (historyEpisodeRelation) Name() string { return "history.episode" }

func (historyEpisodeRelation) Accepts(kind domain.Kind) bool { return kind == domain.KindEpisode }

func (r historyEpisodeRelation) List(ctx context.Context, owner domain.Mergeable) ([]domain.Related, error) {
	entries, err := r.store.ListByEpisode(ctx, owner.Ref().ID)
	if err != nil {
		return nil, err
	}
	return toRelated(entries), nil
}

// Repoint also moves the entry to the podcast of the new episode so the
// two references stay consistent.
func (historyEpisodeRelation) Repoint(obj domain.Related, owner domain.Mergeable) error {
	entry, ok := obj.(*domain.HistoryEntry)
	if !ok {
		return unexpected("history.episode", obj)
	}
	ep, ok := owner.(*domain.Episode)
	if !ok {
		return unexpected("history.episode", owner)
	}
	id := ep.ID
	entry.EpisodeID = &id
	entry.PodcastID = ep.PodcastID
	return nil
}

func (r historyEpisodeRelation) Save(ctx context.Context, obj domain.Related) error {
	return r.store.Update(ctx, obj.(*domain.HistoryEntry))
}

func (r historyEpisodeRelation) Discard(ctx context.Context, obj domain.Related) error {
	return r.store.Delete(ctx, obj.(*domain.HistoryEntry).ID)
}

type publisherRelation struct {
	store PublisherStore
}

func (publisherRelation) Name() string { return "podcast.publishers" }

func (publisherRelation) Accepts(kind domain.Kind) bool { return kind == domain.KindPodcast }

func (r publisherRelation) List(ctx context.Context, owner domain.Mergeable) ([]domain.Related, error) {
	links, err := r.store.ListByPodcast(ctx, owner.Ref().ID)
	if err != nil {
		return nil, err
	}
	return toRelated(links), nil
}

func (publisherRelation) Repoint(obj domain.Related, owner domain.Mergeable) error {
	link, ok := obj.(*domain.Publisher)
	if !ok {
		return unexpected("podcast.publishers", obj)
	}
	link.PodcastID = owner.Ref().ID
	return nil
}

func (r publisherRelation) Detach(ctx context.Context, obj domain.Related, from domain.Mergeable) error {
	return r.store.Remove(ctx, from.Ref().ID, obj.(*domain.Publisher).UserID)
}

func (r publisherRelation) Save(ctx context.Context, obj domain.Related) error {
	link := obj.(*domain.Publisher)
	return r.store.Add(ctx, link.PodcastID, link.UserID)
}

// Discard leaves the link detached: the user already publishes the target.
func (publisherRelation) Discard(context.Context, domain.Related) error {
	return nil
}

type attachmentRelation struct {
	store AttachmentStore
}

func (r attachmentRelation) Name() string { return string(r.store.Kind()) + ".object" }

func (attachmentRelation) Accepts(kind domain.Kind) bool {
	return kind == domain.KindPodcast || kind == domain.KindEpisode
}

func (r attachmentRelation) List(ctx context.Context, owner domain.Mergeable) ([]domain.Related, error) {
	items, err := r.store.ListByOwner(ctx, owner.Ref())
	if err != nil {
		return nil, err
	}
	return toRelated(items), nil
}

func (r attachmentRelation) Repoint(obj domain.Related, owner domain.Mergeable) error {
	a, ok := obj.(*domain.Attachment)
	if !ok {
		return unexpected(r.Name(), obj)
	}
	a.SetOwner(owner.Ref())
	return nil
}

func (r attachmentRelation) Save(ctx context.Context, obj domain.Related) error {
	return r.store.Update(ctx, obj.(*domain.Attachment))
}

func (r attachmentRelation) Discard(ctx context.Context, obj domain.Related) error {
	return r.store.Delete(ctx, obj.(*domain.Attachment).ID)
}

var errMergedUUIDDiscard = errors.New("merged uuids are never discarded")

type mergedUUIDRelation struct {
	store MergedUUIDStore
}

func (mergedUUIDRelation) Name() string { return "merged_uuid.object" }

func (mergedUUIDRelation) Accepts(kind domain.Kind) bool {
	return kind == domain.KindPodcast || kind == domain.KindEpisode
}

func (r mergedUUIDRelation) List(ctx context.Context, owner domain.Mergeable) ([]domain.Related, error) {
	ids, err := r.store.ListByOwner(ctx, owner.Ref())
	if err != nil {
		return nil, err
	}
	return toRelated(ids), nil
}

func (mergedUUIDRelation) Repoint(obj domain.Related, owner domain.Mergeable) error {
	m, ok := obj.(*domain.MergedUUID)
	if !ok {
		return unexpected("merged_uuid.object", obj)
	}
	m.SetOwner(owner.Ref())
	return nil
}

func (r mergedUUIDRelation) Save(ctx context.Context, obj domain.Related) error {
	return r.store.Update(ctx, obj.(*domain.MergedUUID))
}

func (mergedUUIDRelation) Discard(context.Context, domain.Related) error {
	return errMergedUUIDDiscard
}

func toRelated[T domain.Related](items []T) []domain.Related {
	out := make([]domain.Related, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
