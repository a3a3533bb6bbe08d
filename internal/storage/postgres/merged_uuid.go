package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"podmerge/internal/domain"
)

type MergedUUIDStore struct {
	db *sqlx.DB
}

func NewMergedUUIDStore(db *sqlx.DB) *MergedUUIDStore {
	return &MergedUUIDStore{db: db}
}

// Record maps id to owner. Recording an id that is already known re-points
// it, so a UUID never resolves to more than one object.
func (s *MergedUUIDStore) Record(ctx context.Context, id uuid.UUID, owner domain.Ref) error {
	query := `
		INSERT INTO merged_uuids (uuid, content_type, object_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (uuid) DO UPDATE SET
			content_type = EXCLUDED.content_type,
			object_id = EXCLUDED.object_id`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, owner.Kind, owner.ID)
	return translateError(err)
}

func (s *MergedUUIDStore) ListByOwner(ctx context.Context, owner domain.Ref) ([]*domain.MergedUUID, error) {
	query := `
		SELECT uuid, content_type, object_id, created_at
		FROM merged_uuids
		WHERE content_type = $1 AND object_id = $2
		ORDER BY created_at, uuid`

	var merged []*domain.MergedUUID
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &merged, query, owner.Kind, owner.ID)
	return merged, translateError(err)
}

func (s *MergedUUIDStore) Update(ctx context.Context, m *domain.MergedUUID) error {
	query := `UPDATE merged_uuids SET content_type = $2, object_id = $3 WHERE uuid = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, m.UUID, m.OwnerKind, m.OwnerID)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}

// Resolve returns the live object an old id now stands for.
func (s *MergedUUIDStore) Resolve(ctx context.Context, id uuid.UUID) (*domain.MergedUUID, error) {
	var m domain.MergedUUID
	query := `SELECT uuid, content_type, object_id, created_at FROM merged_uuids WHERE uuid = $1`

	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &m, query, id); err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}
