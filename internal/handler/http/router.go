package http

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/unrolled/secure"

	"github.com/worklane-hq/worklane-bff-go/internal/config"
	"github.com/worklane-hq/worklane-bff-go/internal/handler/http/middleware"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/jwt"
)

// Handlers bundles the page controllers the router mounts.
type Handlers struct {
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Document   DocumentHandler
	Memo       MemoHandler
	Leave      LeaveHandler
	Review     ReviewHandler
	Inventory  InventoryHandler
	Reference  ReferenceHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklane-bff"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		IsDevelopment:      cfg.App.Env == "development",
	})
	r.Use(secureMiddleware.Handler)

	r.Use(httprate.LimitByIP(120, time.Minute))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.TokenPassthrough)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.GetView)
				r.Post("/refresh", h.Attendance.Refresh)
				r.Post("/", h.Attendance.Create)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.GetView)
				r.Post("/refresh", h.Employee.Refresh)
				r.Post("/", h.Employee.Create)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", h.Document.GetView)
				r.Post("/refresh", h.Document.Refresh)
				r.Post("/", h.Document.Upload)
				r.Put("/{id}", h.Document.Update)
				r.Delete("/{id}", h.Document.Delete)
			})

			r.Route("/memos", func(r chi.Router) {
				r.Get("/", h.Memo.GetView)
				r.Post("/refresh", h.Memo.Refresh)
				r.Post("/", h.Memo.Create)
				r.Put("/{id}", h.Memo.Update)
				r.Delete("/{id}", h.Memo.Delete)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", h.Leave.GetView)
				r.Post("/refresh", h.Leave.Refresh)
				r.Post("/", h.Leave.Create)
				r.Put("/{id}/status", h.Leave.SetStatus)
				r.Delete("/{id}", h.Leave.Delete)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.Review.GetView)
				r.Post("/refresh", h.Review.Refresh)
				r.Post("/", h.Review.Create)
				r.Put("/{id}", h.Review.Update)
				r.Delete("/{id}", h.Review.Delete)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", h.Inventory.GetView)
				r.Post("/refresh", h.Inventory.Refresh)
				r.Post("/", h.Inventory.Create)
				r.Put("/{id}", h.Inventory.Update)
				r.Delete("/{id}", h.Inventory.Delete)
			})

			r.Route("/reference", func(r chi.Router) {
				r.Get("/departments", h.Reference.Departments)
				r.Get("/document-types", h.Reference.DocumentTypes)
				r.Get("/leave-types", h.Reference.LeaveTypes)
			})
		})
	})
	return r
}
