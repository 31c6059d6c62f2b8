package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/attendance"
	"github.com/smilepoint-dental/clinic-backend-go/internal/domain/period"
	"github.com/smilepoint-dental/clinic-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Append(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	query := `
		INSERT INTO attendance_records (
			id, employee_id, employee_name, employee_type,
			date, time_in, time_out,
			regular_hours, overtime_hours, late_minutes,
			basic_pay, overtime_pay, late_deduction, net_daily_pay
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at
	`

	rec.ID = uuid.Must(uuid.NewV7()).String()
	err := r.db.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.EmployeeName, rec.EmployeeType,
		rec.Date, rec.TimeIn, rec.TimeOut,
		rec.RegularHours, rec.OvertimeHours, rec.LateMinutes,
		rec.BasicPay, rec.OvertimePay, rec.LateDeduction, rec.NetDailyPay,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to append attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) ByEmployee(ctx context.Context, employeeID string, rng *period.DateRange) ([]attendance.Record, error) {
	query := `
		SELECT id, employee_id, employee_name, employee_type,
			   date, time_in, time_out,
			   regular_hours, overtime_hours, late_minutes,
			   basic_pay, overtime_pay, late_deduction, net_daily_pay,
			   created_at
		FROM attendance_records
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}

	if rng != nil {
		query += ` AND date BETWEEN $2 AND $3`
		args = append(args, rng.Start, rng.End)
	}

	// UUIDv7 primary keys sort in insertion order.
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func (r *attendanceRepository) All(ctx context.Context) ([]attendance.Record, error) {
	query := `
		SELECT id, employee_id, employee_name, employee_type,
			   date, time_in, time_out,
			   regular_hours, overtime_hours, late_minutes,
			   basic_pay, overtime_pay, late_deduction, net_daily_pay,
			   created_at
		FROM attendance_records
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Record, error) {
	records := make([]attendance.Record, 0)
	for rows.Next() {
		var rec attendance.Record
		var date time.Time
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeeType,
			&date, &rec.TimeIn, &rec.TimeOut,
			&rec.RegularHours, &rec.OvertimeHours, &rec.LateMinutes,
			&rec.BasicPay, &rec.OvertimePay, &rec.LateDeduction, &rec.NetDailyPay,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		rec.Date = date.Format("2006-01-02")
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}
	return records, nil
}
