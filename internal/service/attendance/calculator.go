package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/attendance"
)

const (
	standardWorkdayMinutes = 8 * 60
	timeOfDayLayout        = "15:04"
)

var (
	sixty              = decimal.NewFromInt(60)
	workdayHours       = decimal.NewFromInt(8)
	overtimeMultiplier = decimal.RequireFromString("1.25")
)

// Calculator derives hours and monetary adjustments from raw punches.
// All methods are pure; the zero value is ready to use.
type Calculator struct{}

func NewCalculator() Calculator {
	return Calculator{}
}

// ComputeHours splits the worked span between two same-day "HH:MM" punches
// into regular hours (capped at 8) and overtime hours. A span of exactly
// 8 hours yields zero overtime. A timeOut before timeIn is rejected rather
// than producing negative hours.
func (Calculator) ComputeHours(timeIn, timeOut string) (regular, overtime decimal.Decimal, err error) {
	in, err := time.Parse(timeOfDayLayout, timeIn)
	if err != nil {
		return decimal.Zero, decimal.Zero, attendance.ErrMalformedTime
	}
	out, err := time.Parse(timeOfDayLayout, timeOut)
	if err != nil {
		return decimal.Zero, decimal.Zero, attendance.ErrMalformedTime
	}
	if out.Before(in) {
		return decimal.Zero, decimal.Zero, attendance.ErrClockOutBeforeClockIn
	}

	totalMinutes := int64(out.Sub(in).Minutes())
	regularMinutes := totalMinutes
	overtimeMinutes := int64(0)
	if totalMinutes > standardWorkdayMinutes {
		regularMinutes = standardWorkdayMinutes
		overtimeMinutes = totalMinutes - standardWorkdayMinutes
	}

	regular = decimal.NewFromInt(regularMinutes).Div(sixty)
	overtime = decimal.NewFromInt(overtimeMinutes).Div(sixty)
	return regular, overtime, nil
}

// LateDeduction charges lateness at the straight hourly rate derived from
// an 8-hour day: dailyRate/8 per hour, proportional to minutes late. There
// is no grace period and no cap.
func (Calculator) LateDeduction(lateMinutes int, dailyRate decimal.Decimal) (decimal.Decimal, error) {
	if lateMinutes < 0 || dailyRate.IsNegative() {
		return decimal.Zero, attendance.ErrNegativeInput
	}

	hourlyRate := dailyRate.Div(workdayHours)
	return hourlyRate.Mul(decimal.NewFromInt(int64(lateMinutes))).Div(sixty), nil
}

// OvertimePay pays hours beyond the standard day at 125% of the derived
// hourly rate, uncapped.
func (Calculator) OvertimePay(overtimeHours, dailyRate decimal.Decimal) (decimal.Decimal, error) {
	if overtimeHours.IsNegative() || dailyRate.IsNegative() {
		return decimal.Zero, attendance.ErrNegativeInput
	}

	hourlyRate := dailyRate.Div(workdayHours)
	return hourlyRate.Mul(overtimeHours).Mul(overtimeMultiplier), nil
}
