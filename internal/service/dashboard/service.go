package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/dashboard"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	clock    clock.Clock
	location *time.Location
}

func NewDashboardService(repo dashboard.DashboardRepository, clk clock.Clock, loc *time.Location) dashboard.DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		clock:               clk,
		location:            loc,
	}
}

// Stats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.StatsResponse, error) {
	now := s.clock.Now().In(s.location)
	today := clock.DateOf(now, s.location)

	var total, present, onLeave int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.DashboardRepository.CountEmployees(gctx)
		return err
	})
	g.Go(func() (err error) {
		present, err = s.DashboardRepository.CountPresent(gctx, today)
		return err
	})
	g.Go(func() (err error) {
		onLeave, err = s.DashboardRepository.CountOnLeave(gctx, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return dashboard.StatsResponse{
		Date:           today.Format("2006-01-02"),
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    max(0, total-present),
		OnLeave:        onLeave,
		GeneratedAt:    now,
	}, nil
}
