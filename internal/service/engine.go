package service

import (
	"log/slog"

	"podmerge/internal/domain"
)

// Engine wires the merge components for one merge run. The registry is
// built once, counters are fresh per run.
type Engine struct {
	stores   Stores
	registry *Registry
	tx       TransactionManager
	logger   *slog.Logger
}

func NewEngine(stores Stores, tx TransactionManager, logger *slog.Logger) *Engine {
	return &Engine{
		stores:   stores,
		registry: NewRegistry(stores),
		tx:       tx,
		logger:   logger,
	}
}

func (e *Engine) EpisodeMerger(actions domain.Actions) *EpisodeMerger {
	return NewEpisodeMerger(e.stores.States, actions, e.logger)
}

func (e *Engine) Migrator(actions domain.Actions) *Migrator {
	be := &bestEffort{
		tx:      e.tx,
		actions: actions,
		logger:  e.logger,
	}
	return &Migrator{
		registry:   e.registry,
		reassign:   newReassignHook(e.stores, be),
		deletion:   newDeletionHook(e.stores, e.EpisodeMerger(actions)),
		bestEffort: be,
		logger:     e.logger,
	}
}
