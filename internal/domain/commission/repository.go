package commission

import (
	"context"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
)

// Repository is an append-only collection of commission records, mirroring
// the attendance store contract: fresh ids on append, defensive copies on
// read, no update or delete.
type Repository interface {
	Append(ctx context.Context, rec Record) (Record, error)
	ByEmployee(ctx context.Context, employeeID string, rng *period.DateRange) ([]Record, error)
	All(ctx context.Context) ([]Record, error)
}
