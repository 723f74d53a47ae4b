package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/handler/http/middleware"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the non-handler inputs of NewRouter.
type RouterConfig struct {
	Env         string
	Version     string
	LogLevel    slog.Level
	FrontendURL string
	// UploadsDir is served under /uploads when images are stored locally.
	UploadsDir string
}

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Dashboard  DashboardHandler
	Events     EventsHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-system"),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	if cfg.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	tokenAuth := JWTService.JWTAuth()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(tokenAuth))
				r.Use(middleware.AuthRequired(JWTService))
				r.Post("/logout", h.Auth.Logout)
			})
		})

		// EventSource cannot set headers, so the stream also accepts ?jwt=
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(tokenAuth, jwtauth.TokenFromHeader, jwtauth.TokenFromQuery))
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(middleware.RequireAdmin)
			r.Get("/events", h.Events.Stream)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/attendance", func(r chi.Router) {
				// Employee only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/check-in", h.Attendance.CheckIn)
					r.Put("/check-out", h.Attendance.CheckOut)
					r.Get("/me", h.Attendance.MyHistory)
					r.Get("/me/status", h.Attendance.MyStatus)
					r.Get("/me/calendar", h.Attendance.MyCalendar)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Attendance.List)
					r.Get("/today", h.Attendance.Today)
					r.Get("/employees/{id}/calendar", h.Attendance.EmployeeCalendar)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequireAdmin).Get("/", h.Employee.List)

				// Self or admin, enforced by the employee service
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.UpdateProfile)
					r.Put("/profile-image", h.Employee.UpdateProfileImage)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/", h.Leave.Apply)
					r.Get("/me", h.Leave.ListMine)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Leave.ListAll)
					r.Patch("/{id}/status", h.Leave.UpdateStatus)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/stats", h.Dashboard.Stats)
			})
		})
	})
	return r
}
