package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is an ordered, scoped URL or slug owned by a podcast or episode
// through a generic reference.
type Attachment struct {
	ID        int64     `db:"id"`
	Kind      Kind      `db:"-"`
	Value     string    `db:"value"`
	Order     int       `db:"sort_order"`
	Scope     string    `db:"scope"`
	OwnerKind Kind      `db:"content_type"`
	OwnerID   uuid.UUID `db:"object_id"`
}

func (a *Attachment) ObjectKind() Kind { return a.Kind }

func (a *Attachment) Owner() Ref { return Ref{Kind: a.OwnerKind, ID: a.OwnerID} }

func (a *Attachment) SetOwner(r Ref) {
	a.OwnerKind = r.Kind
	a.OwnerID = r.ID
}

// MergedUUID records that UUID identified a deleted object which now
// resolves to the owner.
type MergedUUID struct {
	UUID      uuid.UUID `db:"uuid"`
	OwnerKind Kind      `db:"content_type"`
	OwnerID   uuid.UUID `db:"object_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (m *MergedUUID) ObjectKind() Kind { return KindMergedUUID }

func (m *MergedUUID) Owner() Ref { return Ref{Kind: m.OwnerKind, ID: m.OwnerID} }

func (m *MergedUUID) SetOwner(r Ref) {
	m.OwnerKind = r.Kind
	m.OwnerID = r.ID
}
