package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/dashboard"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/clock"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/sse"
)

const (
	SummaryInterval   = 5 * time.Minute
	PruneInterval     = time.Hour
	EventDailySummary = "attendance_summary"
)

type Publisher interface {
	Publish(topic string, event sse.Event)
}

type RevocationPruner interface {
	PruneRevoked(now time.Time) int
}

// AttendanceJobs pushes the dashboard counters to the admin feed.
type AttendanceJobs struct {
	dashboardService dashboard.DashboardService
	publisher        Publisher
}

func NewAttendanceJobs(dashboardService dashboard.DashboardService, publisher Publisher) *AttendanceJobs {
	return &AttendanceJobs{
		dashboardService: dashboardService,
		publisher:        publisher,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("attendance_summary", SummaryInterval, j.PublishSummary)
}

func (j *AttendanceJobs) PublishSummary(ctx context.Context) error {
	stats, err := j.dashboardService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute attendance summary: %w", err)
	}

	j.publisher.Publish(sse.TopicAdmin, sse.Event{
		Event: EventDailySummary,
		Data:  stats,
	})
	return nil
}

// TokenJobs forgets revoked tokens once they would have expired anyway.
type TokenJobs struct {
	pruner RevocationPruner
	clock  clock.Clock
}

func NewTokenJobs(pruner RevocationPruner, clk clock.Clock) *TokenJobs {
	return &TokenJobs{pruner: pruner, clock: clk}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prune_revoked_tokens", PruneInterval, j.PruneRevokedTokens)
}

func (j *TokenJobs) PruneRevokedTokens(ctx context.Context) error {
	if n := j.pruner.PruneRevoked(j.clock.Now()); n > 0 {
		slog.Info("Cron: pruned revoked tokens", "count", n)
	}
	return nil
}
