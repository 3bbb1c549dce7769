package planner

import (
	"context"

	"github.com/storeshift/backend/internal/models"
)

// Planner triggers the external shift optimizer for a month. The call is
// fire-and-wait: it returns the optimizer's human-readable status message and
// the caller re-reads the determined schedule from storage afterwards.
type Planner interface {
	Compute(ctx context.Context, year, month int) (string, error)
}

// Storage is the slice of the store the mock planner needs to fabricate a
// schedule locally.
type Storage interface {
	ListStaff(ctx context.Context) ([]models.Staff, error)
	ListRequestSets(ctx context.Context, year, month int) ([]models.RequestSet, error)
	PutDeterminedSchedule(ctx context.Context, sched models.DeterminedSchedule) error
}
