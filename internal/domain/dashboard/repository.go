package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	// CountPresent counts attendance records on date.
	CountPresent(ctx context.Context, date time.Time) (int64, error)
	CountOnLeave(ctx context.Context, date time.Time) (int64, error)
}
