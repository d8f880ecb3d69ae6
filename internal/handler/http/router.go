package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	TimeRecord TimeRecordHandler
	Report     ReportHandler
	Employee   EmployeeHandler
	Client     ClientHandler
	Accountant AccountantHandler
	Department DepartmentHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.RoleEmployee))
				r.Post("/", h.TimeRecord.Punch)
				r.Get("/", h.TimeRecord.List)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.RoleEmployee, auth.RoleClient, auth.RoleAccountant, auth.RoleAdmin))
				r.Post("/", h.Report.Generate)
				r.Post("/export", h.Report.Export)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.RoleClient, auth.RoleAccountant, auth.RoleAdmin))
				r.Post("/", h.Employee.Create)
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.GetByID)
				r.Get("/{id}/punches", h.TimeRecord.ListForEmployee)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.RoleClient, auth.RoleAccountant, auth.RoleAdmin))
				r.Post("/", h.Department.Create)
				r.Get("/", h.Department.List)
				r.Delete("/{id}", h.Department.Delete)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Use(middleware.RequireRole(auth.RoleAccountant, auth.RoleAdmin))
				r.Post("/", h.Client.Create)
				r.Get("/", h.Client.List)
				r.Get("/{id}", h.Client.GetByID)
				r.Put("/{id}", h.Client.Update)
				r.Delete("/{id}", h.Client.Delete)
			})

			r.Route("/accountants", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Accountant.Create)
				r.Get("/", h.Accountant.List)
				r.Get("/{id}", h.Accountant.GetByID)
				r.Put("/{id}", h.Accountant.Update)
				r.Delete("/{id}", h.Accountant.Delete)
			})
		})
	})

	return r
}
