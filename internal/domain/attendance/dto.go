package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/employee"
	"github.com/smilepoint-dental/clinic-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ClockEventRequest carries one clock-in/clock-out outcome reported by the
// front-of-house layer. Identity fields are opaque snapshots from the
// excluded staff registry; this engine performs no lookups.
type ClockEventRequest struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	EmployeeType string          `json:"employee_type"`
	Date         string          `json:"date"`
	TimeIn       string          `json:"time_in"`
	TimeOut      *string         `json:"time_out,omitempty"`
	LateMinutes  int             `json:"late_minutes"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
}

func (r *ClockEventRequest) Validate() error {
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

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "must be a valid date in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.TimeIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in",
			Message: "must be a valid time in HH:MM format",
		})
	}

	if r.TimeOut != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.TimeOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "must be a valid time in HH:MM format",
			})
		}
	}

	if r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_minutes",
			Message: "must be non-negative",
		})
	}

	if r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter narrows record listings to one employee and an optional
// inclusive date range.
type Filter struct {
	EmployeeID string
	StartDate  *string
	EndDate    *string
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if (f.StartDate == nil) != (f.EndDate == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date and end_date must be provided together",
		})
	}

	if f.StartDate != nil && f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "must be a valid date in YYYY-MM-DD format",
			})
		}
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	EmployeeType  string          `json:"employee_type"`
	Date          string          `json:"date"`
	TimeIn        string          `json:"time_in"`
	TimeOut       *string         `json:"time_out,omitempty"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	LateMinutes   int             `json:"late_minutes"`
	BasicPay      decimal.Decimal `json:"basic_pay"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	LateDeduction decimal.Decimal `json:"late_deduction"`
	NetDailyPay   decimal.Decimal `json:"net_daily_pay"`
}
