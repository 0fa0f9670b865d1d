package main

import (
	"fmt"
	"net/http"

	"github.com/peoplehr/hr-backend-go/internal/config"
	appHTTP "github.com/peoplehr/hr-backend-go/internal/handler/http"
	"github.com/peoplehr/hr-backend-go/internal/pkg/database"
	"github.com/peoplehr/hr-backend-go/internal/pkg/jwt"
	"github.com/peoplehr/hr-backend-go/internal/pkg/oauth"
	"github.com/peoplehr/hr-backend-go/internal/repository/postgresql"
	authService "github.com/peoplehr/hr-backend-go/internal/service/auth"
	leaveService "github.com/peoplehr/hr-backend-go/internal/service/leave"
	payrollService "github.com/peoplehr/hr-backend-go/internal/service/payroll"
	reportService "github.com/peoplehr/hr-backend-go/internal/service/report"
	timesheetService "github.com/peoplehr/hr-backend-go/internal/service/timesheet"
	userService "github.com/peoplehr/hr-backend-go/internal/service/user"
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

	userRepo := postgresql.NewUserRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(userRepo, jwtSvc, googleSvc, cfg.Policy)
	userSvc := userService.NewUserService(userRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, cfg.Policy)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, cfg.Policy)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, timesheetRepo, userRepo, cfg.Policy)
	reportSvc := reportService.NewReportService(timesheetRepo, payrollRepo, leaveRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		userRepo,
		authHandler,
		userHandler,
		timesheetHandler,
		leaveHandler,
		payrollHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
