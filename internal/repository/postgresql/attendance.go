package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/attendance"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const (
	sqlDate = "2006-01-02"

	attendanceColumns = `
		a.id, a.employee_id, COALESCE(e.name, ''), a.date,
		a.check_in_time, a.check_out_time, a.check_in_image, a.check_out_image,
		a.created_at, a.updated_at`

	attendanceFrom = `
		FROM attendance a
		LEFT JOIN employees e ON e.id = a.employee_id`
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.EmployeeName, &att.Date,
		&att.CheckInTime, &att.CheckOutTime, &att.CheckInImage, &att.CheckOutImage,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}
	return records, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1
		  AND a.date = $2::date
		LIMIT 1
	`

	att, err := scanAttendance(a.db.QueryRow(ctx, query, employeeID, date.Format(sqlDate)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance *attendance.Attendance) error {
	query := `
		INSERT INTO attendance (employee_id, date, check_in_time, check_in_image)
		VALUES ($1, $2::date, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := a.db.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date.Format(sqlDate),
		newAttendance.CheckInTime,
		newAttendance.CheckInImage,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err, "attendance_employee_date_key"):
			return attendance.ErrDuplicateCheckIn
		case database.IsForeignKeyViolation(err):
			return attendance.ErrUnknownEmployee
		}
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	return nil
}

// CompleteCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) CompleteCheckOut(ctx context.Context, id int64, at time.Time, image string) (bool, error) {
	query := `
		UPDATE attendance
		SET check_out_time = $2,
		    check_out_image = $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND check_out_time IS NULL
	`

	commandTag, err := a.db.Exec(ctx, query, id, at, image)
	if err != nil {
		return false, fmt.Errorf("failed to complete check-out: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1
		ORDER BY a.date DESC
	`

	rows, err := a.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by employee: %w", err)
	}
	return collectAttendance(rows)
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID int64, from, to time.Time) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1
		  AND a.date BETWEEN $2::date AND $3::date
		ORDER BY a.date ASC
	`

	rows, err := a.db.Query(ctx, query, employeeID, from.Format(sqlDate), to.Format(sqlDate))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	return collectAttendance(rows)
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.date = $1::date
		ORDER BY a.check_in_time DESC
	`

	rows, err := a.db.Query(ctx, query, date.Format(sqlDate))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	return collectAttendance(rows)
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d::date", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d::date", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d::date", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance a WHERE ` + baseWhere
	if err := a.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := max(filter.Page, 1)
	args = append(args, limit, (page-1)*limit)

	selectQuery := fmt.Sprintf(`SELECT %s %s
		WHERE %s
		ORDER BY a.date DESC, a.check_in_time DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, attendanceFrom, baseWhere, argIdx, argIdx+1)

	rows, err := a.db.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance: %w", err)
	}
	records, err := collectAttendance(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
