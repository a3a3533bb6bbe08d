package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionReassignEpisode      = "reassign-episode"
	ActionReassignEpisodeState = "reassign-episode-state"
	ActionMoveEpisodeState     = "move-episode-state"
	ActionMergeEpisodeState    = "merge-episode-state"
	ActionSkipConflict         = "skip-conflict"
)

// Actions counts merge operations by action name.
type Actions map[string]int

func (a Actions) Inc(action string) {
	a[action]++
}

type PodcastMergeRequest struct {
	// Podcasts[0] is the target, the rest are merged into it in order.
	Podcasts []uuid.UUID
	// Groups are sets of duplicate episodes, each merged into its first entry.
	Groups  [][]uuid.UUID
	KeepOld bool
}

type EpisodeMergeRequest struct {
	Target  uuid.UUID
	Aliases []uuid.UUID
	KeepOld bool
}

// MergeStats holds statistics about a merge operation.
type MergeStats struct {
	Kind     Kind
	Target   uuid.UUID
	Aliases  []uuid.UUID
	Actions  Actions
	Skipped  int
	Duration time.Duration
}

type RequestStatus string

const (
	RequestPending RequestStatus = "pending"
	RequestDone    RequestStatus = "done"
	RequestFailed  RequestStatus = "failed"
)

// MergeRequest is a queued merge waiting for the worker.
type MergeRequest struct {
	ID          int64
	Kind        Kind
	TargetID    uuid.UUID
	AliasIDs    []uuid.UUID
	Groups      [][]uuid.UUID
	KeepOld     bool
	Status      RequestStatus
	Error       *string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// QueueStats holds statistics about one pass over the merge queue.
type QueueStats struct {
	Processed int
	Failed    int
	Skipped   int
	Duration  time.Duration
}
