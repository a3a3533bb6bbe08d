package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

var errLocked = errors.New("another merge is running")

// withMergeLock runs fn while holding the exclusive merge lock, waiting up
// to timeout for it.
func withMergeLock(ctx context.Context, path string, timeout time.Duration, fn func() error) error {
	lock := flock.New(path)

	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ok, err := lock.TryLockContext(lockCtx, 250*time.Millisecond)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: lock %s held for more than %s", errLocked, path, timeout)
		}
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: lock %s", errLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}
