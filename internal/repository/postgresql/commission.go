package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/commission"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
	"github.com/smilepoint-dental/clinic-backend-go/internal/pkg/database"
)

type commissionRepository struct {
	db *database.DB
}

func NewCommissionRepository(db *database.DB) commission.Repository {
	return &commissionRepository{db: db}
}

func (r *commissionRepository) Append(ctx context.Context, rec commission.Record) (commission.Record, error) {
	query := `
		INSERT INTO commission_records (
			id, employee_id, employee_name, employee_type,
			date, patient_name, service, transaction_id,
			treatment_amount, commission_rate, commission_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	rec.ID = uuid.Must(uuid.NewV7()).String()
	err := r.db.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.EmployeeName, rec.EmployeeType,
		rec.Date, rec.PatientName, rec.Service, rec.TransactionID,
		rec.TreatmentAmount, rec.CommissionRate, rec.CommissionAmount,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return commission.Record{}, fmt.Errorf("failed to append commission record: %w", err)
	}

	return rec, nil
}

func (r *commissionRepository) ByEmployee(ctx context.Context, employeeID string, rng *period.DateRange) ([]commission.Record, error) {
	query := `
		SELECT id, employee_id, employee_name, employee_type,
			   date, patient_name, service, transaction_id,
			   treatment_amount, commission_rate, commission_amount,
			   created_at
		FROM commission_records
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}

	if rng != nil {
		query += ` AND date BETWEEN $2 AND $3`
		args = append(args, rng.Start, rng.End)
	}

	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query commission records: %w", err)
	}
	defer rows.Close()

	return scanCommissionRows(rows)
}

func (r *commissionRepository) All(ctx context.Context) ([]commission.Record, error) {
	query := `
		SELECT id, employee_id, employee_name, employee_type,
			   date, patient_name, service, transaction_id,
			   treatment_amount, commission_rate, commission_amount,
			   created_at
		FROM commission_records
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query commission records: %w", err)
	}
	defer rows.Close()

	return scanCommissionRows(rows)
}

func scanCommissionRows(rows pgx.Rows) ([]commission.Record, error) {
	records := make([]commission.Record, 0)
	for rows.Next() {
		var rec commission.Record
		var date time.Time
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeeType,
			&date, &rec.PatientName, &rec.Service, &rec.TransactionID,
			&rec.TreatmentAmount, &rec.CommissionRate, &rec.CommissionAmount,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan commission record: %w", err)
		}
		rec.Date = date.Format("2006-01-02")
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read commission records: %w", err)
	}
	return records, nil
}
