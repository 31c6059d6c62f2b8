package payroll

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/commission"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/payroll"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
	attendanceService "github.com/smilepoint-dental/clinic-backend-go/internal/service/attendance"
	commissionService "github.com/smilepoint-dental/clinic-backend-go/internal/service/commission"
)

type ServiceImpl struct {
	attendanceRepo attendance.Repository
	commissionRepo commission.Repository
}

func NewPayrollService(
	attendanceRepo attendance.Repository,
	commissionRepo commission.Repository,
) payroll.Service {
	return &ServiceImpl{
		attendanceRepo: attendanceRepo,
		commissionRepo: commissionRepo,
	}
}

// Summarize implements payroll.Service. The rollup only reads the stores;
// it never writes, so repeated calls against an unchanged store return
// identical summaries.
func (s *ServiceImpl) Summarize(ctx context.Context, req payroll.SummarizeRequest) (payroll.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SummaryResponse{}, err
	}

	rng := period.DateRange{Start: req.StartDate, End: req.EndDate}

	attendanceRecords, err := s.attendanceRepo.ByEmployee(ctx, req.EmployeeID, &rng)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to query attendance records: %w", err)
	}

	commissionRecords, err := s.commissionRepo.ByEmployee(ctx, req.EmployeeID, &rng)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to query commission records: %w", err)
	}

	totalBasicPay := decimal.Zero
	totalOvertimePay := decimal.Zero
	totalLateDeductions := decimal.Zero
	for _, rec := range attendanceRecords {
		totalBasicPay = totalBasicPay.Add(rec.BasicPay)
		totalOvertimePay = totalOvertimePay.Add(rec.OvertimePay)
		totalLateDeductions = totalLateDeductions.Add(rec.LateDeduction)
	}

	totalCommissions := decimal.Zero
	for _, rec := range commissionRecords {
		totalCommissions = totalCommissions.Add(rec.CommissionAmount)
	}

	grossPay := totalBasicPay.
		Add(totalOvertimePay).
		Add(totalCommissions).
		Add(req.TransportationAllowance)
	netPay := grossPay.Sub(totalLateDeductions)

	return payroll.SummaryResponse{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		EmployeeType: req.EmployeeType,
		Period:       rng.Label(),

		TotalBasicPay:           totalBasicPay,
		TotalOvertimePay:        totalOvertimePay,
		TotalLateDeductions:     totalLateDeductions,
		TotalCommissions:        totalCommissions,
		TransportationAllowance: req.TransportationAllowance,

		GrossPay: grossPay,
		NetPay:   netPay,

		AttendanceRecords: attendanceService.MapToRecordResponses(attendanceRecords),
		CommissionRecords: commissionService.MapToRecordResponses(commissionRecords),
	}, nil
}
