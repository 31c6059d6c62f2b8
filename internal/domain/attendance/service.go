package attendance

import (
	"context"
)

// Service defines business logic for attendance records
type Service interface {
	// RecordClockEvent converts a clock event into an attendance record
	// with derived hours and pay components, and appends it to the store
	RecordClockEvent(ctx context.Context, req ClockEventRequest) (RecordResponse, error)

	// ListRecords retrieves an employee's attendance records, optionally
	// bounded to an inclusive date range
	ListRecords(ctx context.Context, filter Filter) ([]RecordResponse, error)
}
