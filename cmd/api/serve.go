package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/attendance"
	appHTTP "github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/handler/http"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/clock"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/cron"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/database/migrations"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/jwt"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/sse"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/storage"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/repository/postgresql"
	attendanceService "github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/service/attendance"
	authService "github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/service/auth"
	dashboardService "github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/service/dashboard"
	employeeService "github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/service/employee"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/service/file"
	leaveService "github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/service/leave"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, db, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		status, err := migrations.CheckDBMigrationStatus(db.Pool)
		if err != nil {
			return fmt.Errorf("schema not ready (run `migrate up`): %w", err)
		}
		slog.Info("Database schema up to date", "version", status.Current)

		fileStorage, err := storage.NewStorageFromConfig(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}

		JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
		if err != nil {
			return fmt.Errorf("initializing jwt: %w", err)
		}

		clk := clock.RealClock{}
		hub := sse.NewHub()
		policy := attendance.Policy{
			Location:      cfg.Attendance.Location(),
			LateThreshold: cfg.Attendance.Threshold(),
			Holidays:      cfg.Attendance.Holidays,
		}

		accountRepo := postgresql.NewAccountRepository(db)
		attendanceRepo := postgresql.NewAttendanceRepository(db)
		employeeRepo := postgresql.NewEmployeeRepository(db)
		leaveRepo := postgresql.NewLeaveRepository(db)
		dashboardRepo := postgresql.NewDashboardRepository(db)

		fileService := file.NewFileService(fileStorage)
		authSvc := authService.NewAuthService(accountRepo, JWTService)
		attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, fileService, hub, clk, policy)
		employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileService)
		leaveSvc := leaveService.NewLeaveService(leaveRepo)
		dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, clk, policy.Location)

		scheduler := cron.NewScheduler()
		cron.NewAttendanceJobs(dashboardSvc, hub).RegisterJobs(scheduler)
		cron.NewTokenJobs(JWTService, clk).RegisterJobs(scheduler)
		scheduler.Start(ctx)
		defer scheduler.Stop()

		routerCfg := appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			Version:     version,
			LogLevel:    cfg.SlogLevel(),
			FrontendURL: cfg.App.FrontendURL,
		}
		if cfg.Storage.Type == "local" {
			routerCfg.UploadsDir = cfg.Storage.BasePath
		}

		router := appHTTP.NewRouter(routerCfg, JWTService, appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(authSvc),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Leave:      appHTTP.NewLeaveHandler(leaveSvc),
			Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
			Events:     appHTTP.NewEventsHandler(hub),
		})

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.App.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("Server running", "addr", server.Addr, "storage", cfg.Storage.Type, "timezone", policy.Location.String())
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}
