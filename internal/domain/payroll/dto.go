package payroll

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/commission"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/employee"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
	"github.com/smilepoint-dental/clinic-backend-go/internal/pkg/validator"
)

// ========================================
// PAYROLL DTOs
// ========================================

// SummarizeRequest asks for one employee's payroll rollup over an inclusive
// date range. Identity fields are caller-supplied snapshots; the
// transportation allowance is a flat addition decided outside the engine.
type SummarizeRequest struct {
	EmployeeID              string          `json:"employee_id"`
	EmployeeName            string          `json:"employee_name"`
	EmployeeType            string          `json:"employee_type"`
	StartDate               string          `json:"start_date"`
	EndDate                 string          `json:"end_date"`
	TransportationAllowance decimal.Decimal `json:"transportation_allowance"`
}

func (r *SummarizeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if !employee.Type(r.EmployeeType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_type",
			Message: "employee_type must be 'dentist' or 'staff'",
		})
	}

	rng := period.DateRange{Start: r.StartDate, End: r.EndDate}
	if err := rng.Validate(); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			errs = append(errs, ve...)
		}
	}

	if r.TransportationAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "transportation_allowance",
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SummaryResponse is the derived rollup. It is computed on demand and never
// stored; recomputing against an unchanged store yields an identical value.
type SummaryResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	EmployeeType string `json:"employee_type"`
	Period       string `json:"period"`

	TotalBasicPay           decimal.Decimal `json:"total_basic_pay"`
	TotalOvertimePay        decimal.Decimal `json:"total_overtime_pay"`
	TotalLateDeductions     decimal.Decimal `json:"total_late_deductions"`
	TotalCommissions        decimal.Decimal `json:"total_commissions"`
	TransportationAllowance decimal.Decimal `json:"transportation_allowance"`

	GrossPay decimal.Decimal `json:"gross_pay"`
	NetPay   decimal.Decimal `json:"net_pay"`

	// The exact records behind the totals, for audit drill-down.
	AttendanceRecords []attendance.RecordResponse `json:"attendance_records"`
	CommissionRecords []commission.RecordResponse `json:"commission_records"`
}
