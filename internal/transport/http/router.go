package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"wingman_admin/internal/handler"
	"wingman_admin/internal/httputil"
	authmw "wingman_admin/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes.
// AuditHandler and ExportHandler are optional; their routes are only mounted
// when the backing service is configured.
type RouterConfig struct {
	AuthHandler       *handler.AuthHandler
	OverviewHandler   *handler.OverviewHandler
	CollectionHandler *handler.CollectionHandler
	VideoHandler      *handler.VideoHandler
	UserHandler       *handler.UserHandler
	CategoryHandler   *handler.CategoryHandler
	DeleteHandler     *handler.DeleteHandler
	AuditHandler      *handler.AuditHandler
	ExportHandler     *handler.ExportHandler
	JWTSecret         string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/logout", cfg.AuthHandler.Logout)
	})

	// Protected routes - require a console session
	r.Group(func(r chi.Router) {
		r.Use(authmw.AuthMiddleware(cfg.JWTSecret))

		r.Get("/me", cfg.AuthHandler.Me)

		r.Route("/api", func(r chi.Router) {
			r.Get("/dashboard/overview", cfg.OverviewHandler.Overview)
			r.Get("/dashboard/users", cfg.CollectionHandler.ListUsers)
			r.Get("/dashboard/videos", cfg.CollectionHandler.ListVideos)
			r.Get("/dashboard/categories", cfg.CollectionHandler.ListCategories)
			r.Get("/dashboard/support", cfg.CollectionHandler.ListSupport)
			r.Get("/dashboard/feedback", cfg.CollectionHandler.ListFeedback)

			r.Post("/refresh", cfg.CollectionHandler.RefreshAll)
			r.Post("/refresh/{kind}", cfg.CollectionHandler.Refresh)

			r.Post("/videos", cfg.VideoHandler.Add)
			r.Put("/videos/{id}", cfg.VideoHandler.Update)

			r.Put("/users/{id}/toggle-status", cfg.UserHandler.ToggleStatus)

			r.Post("/categories", cfg.CategoryHandler.Create)
			r.Put("/categories/{id}", cfg.CategoryHandler.Update)
			r.Put("/categories/{id}/toggle-status", cfg.CategoryHandler.ToggleStatus)

			r.Get("/delete", cfg.DeleteHandler.Staged)
			r.Post("/delete/confirm", cfg.DeleteHandler.Confirm)
			r.Post("/delete/cancel", cfg.DeleteHandler.Cancel)
			r.Post("/delete/{kind}/{id}", cfg.DeleteHandler.Request)

			if cfg.AuditHandler != nil {
				r.Get("/audit", cfg.AuditHandler.List)
			}
			if cfg.ExportHandler != nil {
				r.Post("/export/{kind}", cfg.ExportHandler.Export)
			}
		})
	})

	return r
}
