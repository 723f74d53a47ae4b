package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/employee"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/leave"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveSelect = `
	SELECT l.id, l.employee_id, COALESCE(e.name, ''), l.reason, l.date_from, l.date_to, l.status,
	       l.created_at, l.updated_at
	FROM leaves l
	LEFT JOIN employees e ON e.id = l.employee_id`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(&l.ID, &l.EmployeeID, &l.EmployeeName, &l.Reason, &l.DateFrom, &l.DateTo, &l.Status,
		&l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *leaveRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.Leave, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	leaves := []leave.Leave{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l *leave.Leave) error {
	query := `
		INSERT INTO leaves (employee_id, reason, date_from, date_to, status)
		VALUES ($1, $2, $3::date, $4::date, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		l.EmployeeID, l.Reason, l.DateFrom.Format(sqlDate), l.DateTo.Format(sqlDate), l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to create leave: %w", err)
	}
	return nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	l, err := scanLeave(r.db.QueryRow(ctx, leaveSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}
	return l, nil
}

// ListAll implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListAll(ctx context.Context) ([]leave.Leave, error) {
	return r.list(ctx, leaveSelect+` ORDER BY l.created_at DESC, l.id DESC`)
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.Leave, error) {
	return r.list(ctx, leaveSelect+` WHERE l.employee_id = $1 ORDER BY l.created_at DESC, l.id DESC`, employeeID)
}

// UpdateStatusIfPending implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatusIfPending(ctx context.Context, id int64, status leave.Status) (bool, error) {
	query := `
		UPDATE leaves
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	commandTag, err := r.db.Exec(ctx, query, id, status, leave.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update leave status: %w", err)
	}
	return commandTag.RowsAffected() == 1, nil
}

// CountApprovedCovering implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) CountApprovedCovering(ctx context.Context, date time.Time) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT employee_id)
		FROM leaves
		WHERE status = $1
		  AND $2::date BETWEEN date_from AND date_to
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, leave.StatusApproved, date.Format(sqlDate)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count leaves: %w", err)
	}
	return total, nil
}
