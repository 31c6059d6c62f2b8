package payroll

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/commission"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/employee"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/payroll"
	"github.com/smilepoint-dental/clinic-backend-go/internal/pkg/validator"
	"github.com/smilepoint-dental/clinic-backend-go/internal/repository/memory"
)

func seedWorkday(t *testing.T, store attendance.Repository, date string, basicPay, overtimePay, lateDeduction int64) {
	t.Helper()
	timeOut := "17:00"
	basic := decimal.NewFromInt(basicPay)
	overtime := decimal.NewFromInt(overtimePay)
	late := decimal.NewFromInt(lateDeduction)
	_, err := store.Append(context.Background(), attendance.Record{
		EmployeeID:    "emp-7",
		EmployeeName:  "Carla Reyes",
		EmployeeType:  employee.TypeStaff,
		Date:          date,
		TimeIn:        "08:00",
		TimeOut:       &timeOut,
		RegularHours:  decimal.NewFromInt(8),
		OvertimeHours: decimal.Zero,
		BasicPay:      basic,
		OvertimePay:   overtime,
		LateDeduction: late,
		NetDailyPay:   basic.Add(overtime).Sub(late),
	})
	require.NoError(t, err)
}

func seedCommission(t *testing.T, store commission.Repository, date string, amount int64) {
	t.Helper()
	_, err := store.Append(context.Background(), commission.Record{
		EmployeeID:       "emp-7",
		EmployeeName:     "Carla Reyes",
		EmployeeType:     employee.TypeStaff,
		Date:             date,
		PatientName:      "Jose Cruz",
		Service:          "Tooth mousse application",
		TransactionID:    "txn-1",
		TreatmentAmount:  decimal.NewFromInt(600),
		CommissionRate:   "flat 200",
		CommissionAmount: decimal.NewFromInt(amount),
	})
	require.NoError(t, err)
}

func marchRequest() payroll.SummarizeRequest {
	return payroll.SummarizeRequest{
		EmployeeID:              "emp-7",
		EmployeeName:            "Carla Reyes",
		EmployeeType:            "staff",
		StartDate:               "2025-03-01",
		EndDate:                 "2025-03-31",
		TransportationAllowance: decimal.NewFromInt(165),
	}
}

func TestPayrollService_Summarize_AggregatesAllComponents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	attendanceStore := memory.NewAttendanceStore()
	commissionStore := memory.NewCommissionStore()
	svc := NewPayrollService(attendanceStore, commissionStore)

	seedWorkday(t, attendanceStore, "2025-03-03", 500, 0, 0)
	seedWorkday(t, attendanceStore, "2025-03-04", 500, 125, 0)
	seedWorkday(t, attendanceStore, "2025-03-05", 500, 0, 50)
	seedCommission(t, commissionStore, "2025-03-04", 200)

	summary, err := svc.Summarize(ctx, marchRequest())
	require.NoError(t, err)

	assert.Equal(t, "emp-7", summary.EmployeeID)
	assert.Equal(t, "2025-03-01 - 2025-03-31", summary.Period)
	assert.True(t, summary.TotalBasicPay.Equal(decimal.NewFromInt(1500)), "basic = %s", summary.TotalBasicPay)
	assert.True(t, summary.TotalOvertimePay.Equal(decimal.NewFromInt(125)), "overtime = %s", summary.TotalOvertimePay)
	assert.True(t, summary.TotalLateDeductions.Equal(decimal.NewFromInt(50)), "late = %s", summary.TotalLateDeductions)
	assert.True(t, summary.TotalCommissions.Equal(decimal.NewFromInt(200)), "commissions = %s", summary.TotalCommissions)
	// gross = 1500 + 125 + 200 + 165; net = gross - 50.
	assert.True(t, summary.GrossPay.Equal(decimal.NewFromInt(1990)), "gross = %s", summary.GrossPay)
	assert.True(t, summary.NetPay.Equal(decimal.NewFromInt(1940)), "net = %s", summary.NetPay)

	require.Len(t, summary.AttendanceRecords, 3)
	require.Len(t, summary.CommissionRecords, 1)
	assert.Equal(t, "2025-03-04", summary.CommissionRecords[0].Date)
}

func TestPayrollService_Summarize_ExcludesRecordsOutsidePeriod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	attendanceStore := memory.NewAttendanceStore()
	commissionStore := memory.NewCommissionStore()
	svc := NewPayrollService(attendanceStore, commissionStore)

	seedWorkday(t, attendanceStore, "2025-02-28", 500, 0, 0)
	seedWorkday(t, attendanceStore, "2025-03-01", 500, 0, 0)
	seedWorkday(t, attendanceStore, "2025-03-31", 500, 0, 0)
	seedWorkday(t, attendanceStore, "2025-04-01", 500, 0, 0)
	seedCommission(t, commissionStore, "2025-04-01", 200)

	summary, err := svc.Summarize(ctx, marchRequest())
	require.NoError(t, err)

	// Bounds are inclusive; February and April fall outside.
	assert.True(t, summary.TotalBasicPay.Equal(decimal.NewFromInt(1000)), "basic = %s", summary.TotalBasicPay)
	assert.True(t, summary.TotalCommissions.IsZero())
	assert.Len(t, summary.AttendanceRecords, 2)
	assert.Empty(t, summary.CommissionRecords)
}

func TestPayrollService_Summarize_EmptyStoreYieldsZeroTotals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewPayrollService(memory.NewAttendanceStore(), memory.NewCommissionStore())

	req := marchRequest()
	req.TransportationAllowance = decimal.Zero

	summary, err := svc.Summarize(ctx, req)
	require.NoError(t, err)
	assert.True(t, summary.TotalBasicPay.IsZero())
	assert.True(t, summary.GrossPay.IsZero())
	assert.True(t, summary.NetPay.IsZero())
	assert.Empty(t, summary.AttendanceRecords)
	assert.Empty(t, summary.CommissionRecords)
}

func TestPayrollService_Summarize_IsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	attendanceStore := memory.NewAttendanceStore()
	commissionStore := memory.NewCommissionStore()
	svc := NewPayrollService(attendanceStore, commissionStore)

	seedWorkday(t, attendanceStore, "2025-03-03", 500, 125, 50)
	seedCommission(t, commissionStore, "2025-03-03", 200)

	first, err := svc.Summarize(ctx, marchRequest())
	require.NoError(t, err)
	second, err := svc.Summarize(ctx, marchRequest())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestPayrollService_Summarize_ValidatesRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewPayrollService(memory.NewAttendanceStore(), memory.NewCommissionStore())

	req := marchRequest()
	req.EmployeeID = ""
	req.EmployeeType = "vendor"
	req.EndDate = "2025-02-01" // before the start date
	req.TransportationAllowance = decimal.NewFromInt(-1)

	_, err := svc.Summarize(ctx, req)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "employee_id")
	assert.Contains(t, details, "employee_type")
	assert.Contains(t, details, "end_date")
	assert.Contains(t, details, "transportation_allowance")
}
