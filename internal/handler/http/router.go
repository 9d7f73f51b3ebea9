package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/teampulse/teampulse-backend-go/internal/config"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/middleware"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Admin      AdminHandler
	Employee   EmployeeHandler
	Task       TaskHandler
	Submission SubmissionHandler
	Analytics  AnalyticsHandler
	Account    AccountHandler
	Upload     UploadHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teampulse"),
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

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	// Locally stored uploads are served straight from disk.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Auth.Signup)
			r.Post("/login", h.Auth.Login)
		})

		// The signup form probes this before offering the admin role.
		r.Get("/admin/check-email", h.Auth.CheckAdminEmail)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/admin/emails", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.Admin.ListAdmins)
				r.Post("/", h.Admin.AddAdminEmail)
				r.Delete("/{id}", h.Admin.RemoveAdmin)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Get("/{id}", h.Task.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Task.Create)
					r.Put("/{id}", h.Task.Update)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", h.Task.Delete)
				})
			})

			r.Post("/submissions/{taskID}/submit", h.Submission.Submit)

			r.Get("/analytics/summary", h.Analytics.Summary)

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", h.Account.GetProfile)
				r.Put("/profile", h.Account.UpdateProfile)
				r.Put("/avatar", h.Account.UpdateAvatar)
			})

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/image", h.Upload.UploadImage)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/*", h.Upload.DeleteFile)
				})
			})
		})
	})
	return r
}
