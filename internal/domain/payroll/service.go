package payroll

import (
	"context"
)

// Service defines the payroll rollup operation
type Service interface {
	// Summarize aggregates an employee's attendance and commission records
	// over an inclusive date range into a payroll summary. No matching
	// records is not an error; the summary simply carries zero totals.
	Summarize(ctx context.Context, req SummarizeRequest) (SummaryResponse, error)
}
