package attendance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/employee"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
)

type ServiceImpl struct {
	repo attendance.Repository
	calc Calculator
}

func NewAttendanceService(repo attendance.Repository) attendance.Service {
	return &ServiceImpl{
		repo: repo,
		calc: NewCalculator(),
	}
}

// RecordClockEvent implements attendance.Service. The engine derives every
// monetary field itself: basic pay is the flat daily rate, and net daily pay
// is always basic + overtime - late deduction. Callers cannot supply an
// inconsistent figure.
func (s *ServiceImpl) RecordClockEvent(ctx context.Context, req attendance.ClockEventRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	regular := decimal.Zero
	overtime := decimal.Zero
	if req.TimeOut != nil {
		var err error
		regular, overtime, err = s.calc.ComputeHours(req.TimeIn, *req.TimeOut)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
	}

	lateDeduction, err := s.calc.LateDeduction(req.LateMinutes, req.DailyRate)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	overtimePay, err := s.calc.OvertimePay(overtime, req.DailyRate)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	basicPay := req.DailyRate
	rec := attendance.Record{
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		EmployeeType:  employee.Type(req.EmployeeType),
		Date:          req.Date,
		TimeIn:        req.TimeIn,
		TimeOut:       req.TimeOut,
		RegularHours:  regular,
		OvertimeHours: overtime,
		LateMinutes:   req.LateMinutes,
		BasicPay:      basicPay,
		OvertimePay:   overtimePay,
		LateDeduction: lateDeduction,
		NetDailyPay:   basicPay.Add(overtimePay).Sub(lateDeduction),
	}

	stored, err := s.repo.Append(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to append attendance record: %w", err)
	}

	return mapToRecordResponse(stored), nil
}

// ListRecords implements attendance.Service.
func (s *ServiceImpl) ListRecords(ctx context.Context, filter attendance.Filter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var rng *period.DateRange
	if filter.StartDate != nil && filter.EndDate != nil {
		rng = &period.DateRange{Start: *filter.StartDate, End: *filter.EndDate}
	}

	records, err := s.repo.ByEmployee(ctx, filter.EmployeeID, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	return MapToRecordResponses(records), nil
}

func mapToRecordResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		EmployeeType:  string(rec.EmployeeType),
		Date:          rec.Date,
		TimeIn:        rec.TimeIn,
		TimeOut:       rec.TimeOut,
		RegularHours:  rec.RegularHours,
		OvertimeHours: rec.OvertimeHours,
		LateMinutes:   rec.LateMinutes,
		BasicPay:      rec.BasicPay,
		OvertimePay:   rec.OvertimePay,
		LateDeduction: rec.LateDeduction,
		NetDailyPay:   rec.NetDailyPay,
	}
}

// MapToRecordResponses is shared with the payroll aggregator, which embeds
// the constituent records in its summary.
func MapToRecordResponses(records []attendance.Record) []attendance.RecordResponse {
	result := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, mapToRecordResponse(rec))
	}
	return result
}
