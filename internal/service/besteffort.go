package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"podmerge/internal/domain"
)

// bestEffort saves one object inside a savepoint. A uniqueness conflict
// undoes the save, discards the object and is counted as skip-conflict.
type bestEffort struct {
	tx      TransactionManager
	actions domain.Actions
	logger  *slog.Logger
}

func (b *bestEffort) save(ctx context.Context, what string, save, discard func(ctx context.Context) error) error {
	err := b.tx.WithSavepoint(ctx, save)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrConstraintConflict) {
		return fmt.Errorf("save %s: %w", what, err)
	}

	b.logger.Warn("discarding conflicting object", "object", what, "error", err)
	b.actions.Inc(domain.ActionSkipConflict)

	if err := discard(ctx); err != nil {
		return fmt.Errorf("discard %s: %w", what, err)
	}
	return nil
}
