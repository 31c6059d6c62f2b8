package attendance

import (
	"context"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
)

// Repository is an append-only collection of attendance records. There are
// no update or delete operations; a stored record is immutable.
type Repository interface {
	// Append assigns a fresh opaque id and stores the record, preserving
	// insertion order. It returns the stored copy.
	Append(ctx context.Context, rec Record) (Record, error)

	// ByEmployee returns copies of the employee's records in insertion
	// order, optionally bounded to an inclusive date range. Mutating the
	// result must not affect the store.
	ByEmployee(ctx context.Context, employeeID string, rng *period.DateRange) ([]Record, error)

	// All returns a full snapshot copy in insertion order.
	All(ctx context.Context) ([]Record, error)
}
