package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/commission"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
)

// CommissionStore keeps commission records in an append-only slice, with the
// same locking discipline as AttendanceStore.
type CommissionStore struct {
	mu      sync.RWMutex
	records []commission.Record
}

func NewCommissionStore() *CommissionStore {
	return &CommissionStore{}
}

func (s *CommissionStore) Append(_ context.Context, rec commission.Record) (commission.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = uuid.Must(uuid.NewV7()).String()
	rec.CreatedAt = time.Now().UTC()
	s.records = append(s.records, rec)

	return rec, nil
}

func (s *CommissionStore) ByEmployee(_ context.Context, employeeID string, rng *period.DateRange) ([]commission.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]commission.Record, 0)
	for _, rec := range s.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rng != nil && !rng.Contains(rec.Date) {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}

func (s *CommissionStore) All(_ context.Context) ([]commission.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]commission.Record, 0, len(s.records))
	result = append(result, s.records...)
	return result, nil
}
