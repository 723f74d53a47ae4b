package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/dashboard"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/leave"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) count(ctx context.Context, what, query string, args ...interface{}) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", what, err)
	}
	return total, nil
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	return r.count(ctx, "employees", `SELECT COUNT(*) FROM employees`)
}

// CountPresent implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPresent(ctx context.Context, date time.Time) (int64, error) {
	return r.count(ctx, "present employees",
		`SELECT COUNT(*) FROM attendance WHERE date = $1::date`, date.Format(sqlDate))
}

// CountOnLeave implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountOnLeave(ctx context.Context, date time.Time) (int64, error) {
	return r.count(ctx, "employees on leave", `
		SELECT COUNT(DISTINCT employee_id)
		FROM leaves
		WHERE status = $1
		  AND $2::date BETWEEN date_from AND date_to
	`, leave.StatusApproved, date.Format(sqlDate))
}
