package http

import (
	"log/slog"
	"os"

	"github.com/kintai-app/timeclock-backend-go/internal/config"
	"github.com/kintai-app/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/jwt"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	sessions session.Store,
	authHandler AuthHandler,
	timeRecordHandler TimeRecordHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.IPRestrict(cfg.App.AllowedIPs))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/admin/login", authHandler.AdminLogin)
			r.Post("/employee/login", authHandler.EmployeeLogin)
			r.Post("/employee/logout", authHandler.EmployeeLogout)
		})

		// Employee endpoints, session token required
		r.Route("/time-records", func(r chi.Router) {
			r.Use(middleware.SessionRequired(sessions))
			r.Post("/clock-in", timeRecordHandler.ClockIn)
			r.Post("/clock-out", timeRecordHandler.ClockOut)
			r.Get("/today", timeRecordHandler.GetToday)
		})

		// Admin endpoints, JWT required
		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AdminRequired(jwtService.JWTAuth()))

			r.Route("/time-records", func(r chi.Router) {
				r.Get("/", timeRecordHandler.List)
				r.Delete("/", timeRecordHandler.Delete)
				r.Get("/employee/{employeeID}", timeRecordHandler.ListByEmployee)
				r.Get("/export/csv", timeRecordHandler.ExportCSV)
				r.Post("/correct", timeRecordHandler.Correct)
				r.Post("/cleanup", timeRecordHandler.Cleanup)
				r.Post("/recalculate", timeRecordHandler.Recalculate)
			})

			r.Get("/audit-logs", timeRecordHandler.ListAudit)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})
		})
	})

	return r
}
