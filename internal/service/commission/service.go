package commission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/commission"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/employee"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
)

type ServiceImpl struct {
	repo  commission.Repository
	rules RuleBook
}

func NewCommissionService(repo commission.Repository) commission.Service {
	return NewCommissionServiceWithRules(repo, DefaultRuleBook())
}

// NewCommissionServiceWithRules lets tests and future policy changes swap
// the rule book without touching the service.
func NewCommissionServiceWithRules(repo commission.Repository, rules RuleBook) commission.Service {
	return &ServiceImpl{
		repo:  repo,
		rules: rules,
	}
}

// RecordBilledService implements commission.Service. The dentist and staff
// sides are evaluated independently; a side that computes to zero produces
// no record, so one payment yields zero, one, or two records sharing a
// transaction id.
func (s *ServiceImpl) RecordBilledService(ctx context.Context, req commission.BilledServiceRequest) ([]commission.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	transactionID := ""
	if req.TransactionID != nil {
		transactionID = *req.TransactionID
	}
	if transactionID == "" {
		transactionID = uuid.Must(uuid.NewV7()).String()
	}

	created := make([]commission.RecordResponse, 0, 2)

	dentistAmount, dentistRate := s.rules.DentistCommission(req.DentistID, req.Service, req.TreatmentAmount)
	if dentistAmount.IsPositive() {
		rec, err := s.repo.Append(ctx, commission.Record{
			EmployeeID:       req.DentistID,
			EmployeeName:     req.DentistName,
			EmployeeType:     employee.TypeDentist,
			Date:             req.Date,
			PatientName:      req.PatientName,
			Service:          req.Service,
			TransactionID:    transactionID,
			TreatmentAmount:  req.TreatmentAmount,
			CommissionRate:   dentistRate,
			CommissionAmount: dentistAmount,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to append dentist commission record: %w", err)
		}
		created = append(created, mapToRecordResponse(rec))
	}

	if req.StaffID != nil {
		staffAmount, staffRate := s.rules.StaffCommission(req.Service, req.TreatmentAmount)
		if staffAmount.IsPositive() {
			rec, err := s.repo.Append(ctx, commission.Record{
				EmployeeID:       *req.StaffID,
				EmployeeName:     *req.StaffName,
				EmployeeType:     employee.TypeStaff,
				Date:             req.Date,
				PatientName:      req.PatientName,
				Service:          req.Service,
				TransactionID:    transactionID,
				TreatmentAmount:  req.TreatmentAmount,
				CommissionRate:   staffRate,
				CommissionAmount: staffAmount,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to append staff commission record: %w", err)
			}
			created = append(created, mapToRecordResponse(rec))
		}
	}

	return created, nil
}

// ListRecords implements commission.Service.
func (s *ServiceImpl) ListRecords(ctx context.Context, filter commission.Filter) ([]commission.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var rng *period.DateRange
	if filter.StartDate != nil && filter.EndDate != nil {
		rng = &period.DateRange{Start: *filter.StartDate, End: *filter.EndDate}
	}

	records, err := s.repo.ByEmployee(ctx, filter.EmployeeID, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to query commission records: %w", err)
	}

	return MapToRecordResponses(records), nil
}

func mapToRecordResponse(rec commission.Record) commission.RecordResponse {
	return commission.RecordResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		EmployeeName:     rec.EmployeeName,
		EmployeeType:     string(rec.EmployeeType),
		Date:             rec.Date,
		PatientName:      rec.PatientName,
		Service:          rec.Service,
		TransactionID:    rec.TransactionID,
		TreatmentAmount:  rec.TreatmentAmount,
		CommissionRate:   rec.CommissionRate,
		CommissionAmount: rec.CommissionAmount,
	}
}

// MapToRecordResponses is shared with the payroll aggregator, which embeds
// the constituent records in its summary.
func MapToRecordResponses(records []commission.Record) []commission.RecordResponse {
	result := make([]commission.RecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, mapToRecordResponse(rec))
	}
	return result
}
