package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehr/hr-backend-go/internal/config"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/peoplehr/hr-backend-go/internal/handler/http/middleware"
	"github.com/peoplehr/hr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	userRepository user.UserRepository,
	authHandler AuthHandler,
	userHandler UserHandler,
	timesheetHandler TimesheetHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.ActorContext(userRepository))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Put("/{id}", userHandler.Update)
			})

			r.Route("/hr/employees", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionUserManage))
				r.Get("/", userHandler.ListEmployees)
				r.Post("/", userHandler.AddEmployee)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Post("/clockin", timesheetHandler.ClockIn)
				r.Post("/clockout", timesheetHandler.ClockOut)
				r.Get("/me", timesheetHandler.ListMy)
				r.Get("/pending", timesheetHandler.ListPending)
				r.Put("/{id}/approve", timesheetHandler.Approve)
				r.Put("/{id}/reject", timesheetHandler.Reject)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Request)
				r.Get("/", leaveHandler.ListAll)
				r.Get("/me", leaveHandler.ListMy)
				r.Get("/pending", leaveHandler.ListPending)
				r.Put("/{id}/approve", leaveHandler.Approve)
				r.Put("/{id}/reject", leaveHandler.Reject)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/generate", payrollHandler.Generate)
				r.Get("/", payrollHandler.List)
				r.Get("/{id}", payrollHandler.Get)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsView))
				r.Get("/attendance", reportHandler.Attendance)
				r.Get("/payroll", reportHandler.Payroll)
				r.Get("/leaves", reportHandler.Leaves)
				r.Get("/employees", reportHandler.Employees)
			})
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
