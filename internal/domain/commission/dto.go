package commission

import (
	"github.com/shopspring/decimal"

	"github.com/smilepoint-dental/clinic-backend-go/internal/pkg/validator"
)

// ========================================
// COMMISSION DTOs
// ========================================

// BilledServiceRequest carries one qualifying payment event. The treating
// dentist is always named; an assisting staff member is optional. Each side
// is evaluated against its own rule set and yields a record only when the
// computed commission is positive, so one event produces zero, one, or two
// records, correlated by transaction id.
type BilledServiceRequest struct {
	DentistID       string          `json:"dentist_id"`
	DentistName     string          `json:"dentist_name"`
	StaffID         *string         `json:"staff_id,omitempty"`
	StaffName       *string         `json:"staff_name,omitempty"`
	Service         string          `json:"service"`
	TreatmentAmount decimal.Decimal `json:"treatment_amount"`
	PatientName     string          `json:"patient_name"`
	Date            string          `json:"date"`
	TransactionID   *string         `json:"transaction_id,omitempty"`
}

func (r *BilledServiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DentistID) {
		errs = append(errs, validator.ValidationError{
			Field:   "dentist_id",
			Message: "dentist_id is required",
		})
	}

	if validator.IsEmpty(r.DentistName) {
		errs = append(errs, validator.ValidationError{
			Field:   "dentist_name",
			Message: "dentist_name is required",
		})
	}

	if r.StaffID != nil && validator.IsEmpty(*r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must not be blank when provided",
		})
	}

	if r.StaffID != nil && (r.StaffName == nil || validator.IsEmpty(*r.StaffName)) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_name",
			Message: "staff_name is required when staff_id is provided",
		})
	}

	if validator.IsEmpty(r.Service) {
		errs = append(errs, validator.ValidationError{
			Field:   "service",
			Message: "service is required",
		})
	}

	if r.TreatmentAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "treatment_amount",
			Message: "must be non-negative",
		})
	}

	if validator.IsEmpty(r.PatientName) {
		errs = append(errs, validator.ValidationError{
			Field:   "patient_name",
			Message: "patient_name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "must be a valid date in YYYY-MM-DD format",
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
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	EmployeeType     string          `json:"employee_type"`
	Date             string          `json:"date"`
	PatientName      string          `json:"patient_name"`
	Service          string          `json:"service"`
	TransactionID    string          `json:"transaction_id"`
	TreatmentAmount  decimal.Decimal `json:"treatment_amount"`
	CommissionRate   string          `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
}
