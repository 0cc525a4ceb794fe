// Package store persists generation job snapshots.
package store

import (
	"context"

	"github.com/sells-group/sitegen/internal/model"
)

// JobFilter specifies criteria for listing jobs.
type JobFilter struct {
	Status model.JobStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for generation jobs. One row per
// business id: SaveJob upserts the full snapshot, so the stored row always
// mirrors the orchestrator's in-memory state.
type Store interface {
	SaveJob(ctx context.Context, job *model.GenerationJob) error
	GetJob(ctx context.Context, businessID string) (*model.GenerationJob, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]model.GenerationJob, error)

	Migrate(ctx context.Context) error
	Close() error
}
