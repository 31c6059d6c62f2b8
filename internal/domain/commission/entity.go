package commission

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/employee"
)

// Record is one earned commission event tied to a billed service. A single
// payment can yield a dentist-side and a staff-side record; the two share a
// TransactionID. Records are append-only and never modified.
type Record struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	EmployeeType employee.Type

	Date          string // YYYY-MM-DD
	PatientName   string
	Service       string // free-text label the rules match against
	TransactionID string

	TreatmentAmount  decimal.Decimal
	CommissionRate   string // display label only, never used in computation
	CommissionAmount decimal.Decimal

	CreatedAt time.Time
}
