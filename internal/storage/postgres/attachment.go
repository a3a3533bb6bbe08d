package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"podmerge/internal/domain"
)

// AttachmentStore persists URLs or slugs. Both live in tables of the same
// shape that differ only in the name of the value column.
type AttachmentStore struct {
	db     *sqlx.DB
	kind   domain.Kind
	table  string
	column string
}

func NewURLStore(db *sqlx.DB) *AttachmentStore {
	return &AttachmentStore{db: db, kind: domain.KindURL, table: "urls", column: "url"}
}

func NewSlugStore(db *sqlx.DB) *AttachmentStore {
	return &AttachmentStore{db: db, kind: domain.KindSlug, table: "slugs", column: "slug"}
}

func (s *AttachmentStore) Kind() domain.Kind {
	return s.kind
}

func (s *AttachmentStore) Create(ctx context.Context, a *domain.Attachment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, sort_order, scope, content_type, object_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, s.table, s.column)

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		a.Value, a.Order, a.Scope, a.OwnerKind, a.OwnerID,
	).Scan(&a.ID)
	if err != nil {
		return translateError(err)
	}
	a.Kind = s.kind
	return nil
}

func (s *AttachmentStore) ListByOwner(ctx context.Context, owner domain.Ref) ([]*domain.Attachment, error) {
	query := fmt.Sprintf(`
		SELECT id, %s AS value, sort_order, scope, content_type, object_id
		FROM %s
		WHERE content_type = $1 AND object_id = $2
		ORDER BY sort_order, id`, s.column, s.table)

	var attachments []*domain.Attachment
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &attachments, query, owner.Kind, owner.ID); err != nil {
		return nil, translateError(err)
	}
	for _, a := range attachments {
		a.Kind = s.kind
	}
	return attachments, nil
}

// MaxOrder returns the highest order among the owner's attachments, or -1
// when it has none.
func (s *AttachmentStore) MaxOrder(ctx context.Context, owner domain.Ref) (int, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(MAX(sort_order), -1)
		FROM %s
		WHERE content_type = $1 AND object_id = $2`, s.table)

	var maxOrder int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &maxOrder, query, owner.Kind, owner.ID)
	return maxOrder, translateError(err)
}

func (s *AttachmentStore) Update(ctx context.Context, a *domain.Attachment) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2,
			sort_order = $3,
			scope = $4,
			content_type = $5,
			object_id = $6
		WHERE id = $1`, s.table, s.column)

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		a.ID, a.Value, a.Order, a.Scope, a.OwnerKind, a.OwnerID,
	)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}

func (s *AttachmentStore) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", s.table)
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id)
	return translateError(err)
}
