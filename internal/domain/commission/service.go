package commission

import (
	"context"
)

// Service defines business logic for commission records
type Service interface {
	// RecordBilledService evaluates a payment event against the dentist
	// and staff rule books and appends a record for each positive payout.
	// It returns the records created, which may be none.
	RecordBilledService(ctx context.Context, req BilledServiceRequest) ([]RecordResponse, error)

	// ListRecords retrieves an employee's commission records, optionally
	// bounded to an inclusive date range
	ListRecords(ctx context.Context, filter Filter) ([]RecordResponse, error)
}
