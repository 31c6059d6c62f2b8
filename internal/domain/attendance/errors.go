package attendance

import "errors"

// Attendance domain errors
var (
	ErrMalformedTime         = errors.New("malformed time of day, expected HH:MM")
	ErrClockOutBeforeClockIn = errors.New("time out must not be before time in")
	ErrNegativeInput         = errors.New("negative value passed to pay calculation")
)
