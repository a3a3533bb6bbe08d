package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"podmerge/internal/domain"
)

const uniqueViolation = pq.ErrorCode("23505")

// translateError maps driver errors onto domain errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return &domain.ConstraintConflictError{Constraint: pqErr.Constraint, Err: err}
	}
	return err
}

// expectAffected turns an update that touched no rows into ErrNotFound.
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
