package period

import (
	"github.com/smilepoint-dental/clinic-backend-go/internal/pkg/validator"
)

// DateRange is an inclusive calendar-day range. Dates are "YYYY-MM-DD"
// strings, so lexicographic comparison matches chronological order.
type DateRange struct {
	Start string
	End   string
}

func (r DateRange) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Start); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "must be a valid date in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.End); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "must be a valid date in YYYY-MM-DD format",
		})
	}
	if len(errs) == 0 && r.End < r.Start {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Contains reports whether date falls within the range, bounds included.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// Label renders the range for display on a payroll summary.
func (r DateRange) Label() string {
	return r.Start + " - " + r.End
}
