package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
)

// AttendanceStore keeps attendance records in an append-only slice. Appends
// take the write lock so id generation and insertion are atomic; reads copy
// out under the read lock so callers always see a consistent snapshot.
type AttendanceStore struct {
	mu      sync.RWMutex
	records []attendance.Record
}

func NewAttendanceStore() *AttendanceStore {
	return &AttendanceStore{}
}

func (s *AttendanceStore) Append(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// UUIDv7 ids sort in generation order, matching insertion order.
	rec.ID = uuid.Must(uuid.NewV7()).String()
	rec.CreatedAt = time.Now().UTC()
	s.records = append(s.records, rec)

	return copyAttendance(rec), nil
}

func (s *AttendanceStore) ByEmployee(_ context.Context, employeeID string, rng *period.DateRange) ([]attendance.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]attendance.Record, 0)
	for _, rec := range s.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rng != nil && !rng.Contains(rec.Date) {
			continue
		}
		result = append(result, copyAttendance(rec))
	}
	return result, nil
}

func (s *AttendanceStore) All(_ context.Context) ([]attendance.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]attendance.Record, 0, len(s.records))
	for _, rec := range s.records {
		result = append(result, copyAttendance(rec))
	}
	return result, nil
}

// copyAttendance clones pointer fields so a returned record shares no
// memory with the stored one.
func copyAttendance(rec attendance.Record) attendance.Record {
	if rec.TimeOut != nil {
		timeOut := *rec.TimeOut
		rec.TimeOut = &timeOut
	}
	return rec
}
