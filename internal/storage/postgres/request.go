package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"podmerge/internal/domain"
)

// RequestStore persists queued merge requests.
type RequestStore struct {
	db *sqlx.DB
}

func NewRequestStore(db *sqlx.DB) *RequestStore {
	return &RequestStore{db: db}
}

type requestRow struct {
	ID          int64          `db:"id"`
	Kind        string         `db:"kind"`
	TargetID    uuid.UUID      `db:"target_id"`
	AliasIDs    pq.StringArray `db:"alias_ids"`
	Groups      []byte         `db:"groups"`
	KeepOld     bool           `db:"keep_old"`
	Status      string         `db:"status"`
	Error       *string        `db:"error"`
	CreatedAt   time.Time      `db:"created_at"`
	ProcessedAt *time.Time     `db:"processed_at"`
}

func (s *RequestStore) Enqueue(ctx context.Context, req *domain.MergeRequest) error {
	groups, err := json.Marshal(req.Groups)
	if err != nil {
		return fmt.Errorf("marshal groups: %w", err)
	}
	if req.Groups == nil {
		groups = []byte("[]")
	}

	aliases := make([]string, len(req.AliasIDs))
	for i, id := range req.AliasIDs {
		aliases[i] = id.String()
	}

	query := `
		INSERT INTO merge_requests (kind, target_id, alias_ids, groups, keep_old)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at`

	var status string
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		req.Kind, req.TargetID, pq.Array(aliases), string(groups), req.KeepOld,
	).Scan(&req.ID, &status, &req.CreatedAt)
	if err != nil {
		return translateError(err)
	}
	req.Status = domain.RequestStatus(status)
	return nil
}

// ListPending returns up to limit pending requests, oldest first.
func (s *RequestStore) ListPending(ctx context.Context, limit int) ([]*domain.MergeRequest, error) {
	query := `
		SELECT id, kind, target_id, alias_ids, groups, keep_old, status, error, created_at, processed_at
		FROM merge_requests
		WHERE status = 'pending'
		ORDER BY created_at, id
		LIMIT $1`

	var rows []requestRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, limit); err != nil {
		return nil, translateError(err)
	}

	requests := make([]*domain.MergeRequest, 0, len(rows))
	for _, row := range rows {
		req, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", row.ID, err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (s *RequestStore) MarkDone(ctx context.Context, id int64) error {
	return s.finish(ctx, id, domain.RequestDone, nil)
}

func (s *RequestStore) MarkFailed(ctx context.Context, id int64, reason string) error {
	return s.finish(ctx, id, domain.RequestFailed, &reason)
}

func (s *RequestStore) finish(ctx context.Context, id int64, status domain.RequestStatus, reason *string) error {
	query := `UPDATE merge_requests SET status = $2, error = $3, processed_at = NOW() WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, string(status), reason)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}

func (r requestRow) toDomain() (*domain.MergeRequest, error) {
	aliases := make([]uuid.UUID, len(r.AliasIDs))
	for i, s := range r.AliasIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse alias id: %w", err)
		}
		aliases[i] = id
	}

	var groups [][]uuid.UUID
	if len(r.Groups) > 0 {
		if err := json.Unmarshal(r.Groups, &groups); err != nil {
			return nil, fmt.Errorf("parse groups: %w", err)
		}
	}

	return &domain.MergeRequest{
		ID:          r.ID,
		Kind:        domain.Kind(r.Kind),
		TargetID:    r.TargetID,
		AliasIDs:    aliases,
		Groups:      groups,
		KeepOld:     r.KeepOld,
		Status:      domain.RequestStatus(r.Status),
		Error:       r.Error,
		CreatedAt:   r.CreatedAt,
		ProcessedAt: r.ProcessedAt,
	}, nil
}
