package dashboard

import "context"

type DashboardService interface {
	// Stats returns today's headline counts.
	Stats(ctx context.Context) (StatsResponse, error)
}
