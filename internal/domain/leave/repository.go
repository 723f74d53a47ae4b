package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l *Leave) error
	GetByID(ctx context.Context, id int64) (Leave, error)
	// ListAll returns every request with employee names, newest first.
	ListAll(ctx context.Context) ([]Leave, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Leave, error)
	// UpdateStatusIfPending moves a Pending request to status and reports
	// whether a row changed.
	UpdateStatusIfPending(ctx context.Context, id int64, status Status) (bool, error)
	// CountApprovedCovering counts distinct employees with an approved leave covering date.
	CountApprovedCovering(ctx context.Context, date time.Time) (int64, error)
}
