package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/commission"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/employee"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
)

func workday(employeeID, date string) attendance.Record {
	timeOut := "16:00"
	return attendance.Record{
		EmployeeID:    employeeID,
		EmployeeName:  "Carla Reyes",
		EmployeeType:  employee.TypeStaff,
		Date:          date,
		TimeIn:        "08:00",
		TimeOut:       &timeOut,
		RegularHours:  decimal.NewFromInt(8),
		BasicPay:      decimal.NewFromInt(800),
		NetDailyPay:   decimal.NewFromInt(800),
		LateDeduction: decimal.Zero,
	}
}

func TestAttendanceStore_Append_AssignsIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewAttendanceStore()

	first, err := store.Append(ctx, workday("emp-7", "2025-03-10"))
	require.NoError(t, err)
	second, err := store.Append(ctx, workday("emp-7", "2025-03-11"))
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestAttendanceStore_ByEmployee_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewAttendanceStore()

	// Insert out of calendar order; queries return insertion order.
	for _, date := range []string{"2025-03-15", "2025-03-01", "2025-03-31"} {
		_, err := store.Append(ctx, workday("emp-7", date))
		require.NoError(t, err)
	}
	_, err := store.Append(ctx, workday("emp-other", "2025-03-02"))
	require.NoError(t, err)

	records, err := store.ByEmployee(ctx, "emp-7", nil)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2025-03-15", records[0].Date)
	assert.Equal(t, "2025-03-01", records[1].Date)
	assert.Equal(t, "2025-03-31", records[2].Date)
}

func TestAttendanceStore_ByEmployee_RangeBoundsAreInclusive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewAttendanceStore()

	for _, date := range []string{"2025-02-28", "2025-03-01", "2025-03-31", "2025-04-01"} {
		_, err := store.Append(ctx, workday("emp-7", date))
		require.NoError(t, err)
	}

	records, err := store.ByEmployee(ctx, "emp-7", &period.DateRange{Start: "2025-03-01", End: "2025-03-31"})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-03-01", records[0].Date)
	assert.Equal(t, "2025-03-31", records[1].Date)
}

func TestAttendanceStore_ByEmployee_ReturnsDefensiveCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewAttendanceStore()

	stored, err := store.Append(ctx, workday("emp-7", "2025-03-10"))
	require.NoError(t, err)

	records, err := store.ByEmployee(ctx, "emp-7", nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Mutating a returned record, including through its pointer field, must
	// not leak into the store.
	records[0].EmployeeName = "tampered"
	*records[0].TimeOut = "23:59"

	again, err := store.ByEmployee(ctx, "emp-7", nil)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "Carla Reyes", again[0].EmployeeName)
	assert.Equal(t, "16:00", *again[0].TimeOut)
	assert.Equal(t, stored.ID, again[0].ID)
}

func TestAttendanceStore_ConcurrentAppends(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewAttendanceStore()

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := store.Append(ctx, workday(fmt.Sprintf("emp-%d", w), "2025-03-10"))
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, writers*perWriter)

	seen := make(map[string]bool, len(all))
	for _, rec := range all {
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestCommissionStore_AppendAndQuery(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewCommissionStore()

	rec := commission.Record{
		EmployeeID:       "3",
		EmployeeName:     "Dr. Ana Lim",
		EmployeeType:     employee.TypeDentist,
		Date:             "2025-03-10",
		PatientName:      "Jose Cruz",
		Service:          "Root canal",
		TransactionID:    "txn-1",
		TreatmentAmount:  decimal.NewFromInt(10000),
		CommissionRate:   "40%",
		CommissionAmount: decimal.NewFromInt(4000),
	}

	stored, err := store.Append(ctx, rec)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)

	records, err := store.ByEmployee(ctx, "3", &period.DateRange{Start: "2025-03-01", End: "2025-03-31"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, stored.ID, records[0].ID)
	assert.True(t, records[0].CommissionAmount.Equal(decimal.NewFromInt(4000)))

	records, err = store.ByEmployee(ctx, "3", &period.DateRange{Start: "2025-04-01", End: "2025-04-30"})
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = store.ByEmployee(ctx, "unknown", nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}
