package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/employee"
)

// Record is one employee's work-day outcome: the raw punches plus the pay
// figures derived from them. Records are append-only and never modified;
// corrections are new compensating records.
type Record struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	EmployeeType employee.Type

	Date    string  // YYYY-MM-DD
	TimeIn  string  // HH:MM
	TimeOut *string // nil while still clocked in

	RegularHours  decimal.Decimal // capped at 8
	OvertimeHours decimal.Decimal
	LateMinutes   int

	BasicPay      decimal.Decimal // the flat daily rate
	OvertimePay   decimal.Decimal
	LateDeduction decimal.Decimal
	NetDailyPay   decimal.Decimal // basic + overtime - late deduction

	CreatedAt time.Time
}
