package main

import (
	"fmt"
	"net/http"

	"github.com/kintai-app/timeclock-backend-go/internal/config"
	appHTTP "github.com/kintai-app/timeclock-backend-go/internal/handler/http"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/cron"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/database"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/jwt"
	"github.com/kintai-app/timeclock-backend-go/internal/pkg/session"
	"github.com/kintai-app/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/kintai-app/timeclock-backend-go/internal/service/auth"
	employeeService "github.com/kintai-app/timeclock-backend-go/internal/service/employee"
	exportService "github.com/kintai-app/timeclock-backend-go/internal/service/export"
	timeRecordService "github.com/kintai-app/timeclock-backend-go/internal/service/timerecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	sessions := session.NewMemoryStore(session.Config{
		TTL:         cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
	})

	timeRecordSvc := timeRecordService.NewTimeRecordService(db, timeRecordRepo, employeeRepo, auditRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	authSvc := authService.NewAuthService(adminRepo, employeeRepo, jwtService, sessions)
	exportSvc := exportService.NewExportService(timeRecordSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	timeRecordHandler := appHTTP.NewTimeRecordHandler(timeRecordSvc, exportSvc, auditRepo)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	scheduler := cron.NewScheduler()
	maintenanceJobs := cron.NewMaintenanceJobs(timeRecordSvc, sessions, cfg.Cleanup.WindowDays)
	maintenanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, sessions, authHandler, timeRecordHandler, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
