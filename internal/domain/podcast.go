package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind names a persisted object type. It doubles as the content type of
// generic references.
type Kind string

const (
	KindPodcast      Kind = "podcast"
	KindEpisode      Kind = "episode"
	KindURL          Kind = "url"
	KindSlug         Kind = "slug"
	KindMergedUUID   Kind = "merged_uuid"
	KindSubscription Kind = "subscription"
	KindHistoryEntry Kind = "history_entry"
	KindPublisher    Kind = "publisher"
	KindEpisodeState Kind = "episode_state"
)

// Ref points at a mergeable entity by kind and id.
type Ref struct {
	Kind Kind
	ID   uuid.UUID
}

func (r Ref) String() string {
	return string(r.Kind) + ":" + r.ID.String()
}

// Mergeable is an entity that can be the primary or an alias of a merge.
type Mergeable interface {
	Ref() Ref
	// Scope is the uniqueness namespace of URLs and slugs attached to the entity.
	Scope() string
	// Info returns a pointer to the attributes that are filled from aliases.
	Info() any
}

// Related is any object that can be re-pointed from an alias to a primary.
type Related interface {
	ObjectKind() Kind
}

type Podcast struct {
	ID uuid.UUID `db:"id"`
	PodcastInfo
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type PodcastInfo struct {
	Title       string     `db:"title"`
	Subtitle    string     `db:"subtitle"`
	Description string     `db:"description"`
	Link        string     `db:"link"`
	Language    string     `db:"language"`
	Author      string     `db:"author"`
	LogoURL     string     `db:"logo_url"`
	License     string     `db:"license"`
	Twitter     string     `db:"twitter"`
	LastUpdate  *time.Time `db:"last_update"`
}

func (p *Podcast) Ref() Ref { return Ref{Kind: KindPodcast, ID: p.ID} }

// Scope of podcast attachments is global.
func (p *Podcast) Scope() string { return "" }

// AsScope is the scope of objects nested below the podcast.
func (p *Podcast) AsScope() string { return ScopeOf(p.ID) }

func (p *Podcast) Info() any { return &p.PodcastInfo }

type Episode struct {
	ID        uuid.UUID `db:"id"`
	PodcastID uuid.UUID `db:"podcast_id"`
	EpisodeInfo
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type EpisodeInfo struct {
	Title       string     `db:"title"`
	Subtitle    string     `db:"subtitle"`
	Description string     `db:"description"`
	Link        string     `db:"link"`
	GUID        string     `db:"guid"`
	Author      string     `db:"author"`
	MimeTypes   string     `db:"mimetypes"`
	Duration    *int64     `db:"duration"`
	Released    *time.Time `db:"released"`
}

func (e *Episode) Ref() Ref { return Ref{Kind: KindEpisode, ID: e.ID} }

func (e *Episode) Scope() string { return ScopeOf(e.PodcastID) }

func (e *Episode) Info() any { return &e.EpisodeInfo }

func (e *Episode) ObjectKind() Kind { return KindEpisode }

// ScopeOf returns the scope string derived from a podcast id.
func ScopeOf(podcastID uuid.UUID) string {
	return strings.ReplaceAll(podcastID.String(), "-", "")
}
