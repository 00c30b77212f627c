package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes mounts the full API surface. Reads of published content
// are public; everything that mutates, plus the all-statuses project
// listing, sits behind requireAuth.
func setupRoutes(r chi.Router, handlers *routeHandlers, sessionMW sessionMiddleware, startupTime time.Time) {
	r.Get("/health", healthCheck(startupTime))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthCheck(startupTime))

		r.Post("/setup", handlers.authHandler.setup())

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handlers.authHandler.login())
			r.Post("/logout", handlers.authHandler.logout())
			r.Get("/me", handlers.authHandler.me())
			r.Post("/register", handlers.authHandler.register())
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", handlers.categoryHandler.listCategories())

			r.Group(func(r chi.Router) {
				r.Use(sessionMW.requireAuth)
				r.Post("/", handlers.categoryHandler.createCategory())
				r.Put("/{categoryID}", handlers.categoryHandler.updateCategory())
				r.Delete("/{categoryID}", handlers.categoryHandler.deleteCategory())
			})
		})

		r.Route("/tools", func(r chi.Router) {
			r.Get("/", handlers.toolHandler.listTools())
			r.Get("/category/{categoryID}", handlers.toolHandler.listToolsByCategory())

			r.Group(func(r chi.Router) {
				r.Use(sessionMW.requireAuth)
				r.Post("/", handlers.toolHandler.createTool())
				r.Put("/{toolID}", handlers.toolHandler.updateTool())
				r.Delete("/{toolID}", handlers.toolHandler.deleteTool())
			})
		})

		r.Route("/projects", func(r chi.Router) {
			// Static segments must be registered alongside the
			// {projectID} pattern; chi resolves them first.
			r.Get("/public", handlers.projectHandler.listPublishedProjects())
			r.Get("/slug/{slug}", handlers.projectHandler.getProjectBySlug())
			r.Get("/{projectID}", handlers.projectHandler.getProject())
			r.Get("/{projectID}/images", handlers.imageHandler.listImages())

			r.Group(func(r chi.Router) {
				r.Use(sessionMW.requireAuth)
				r.Get("/", handlers.projectHandler.listAllProjects())
				r.Post("/", handlers.projectHandler.createProject())
				r.Put("/{projectID}", handlers.projectHandler.updateProject())
				r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
				r.Post("/{projectID}/images", handlers.imageHandler.createImage())
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(sessionMW.requireAuth)
			r.Delete("/images/{imageID}", handlers.imageHandler.deleteImage())
			r.Post("/uploads", handlers.uploadHandler.upload())
			r.Delete("/uploads", handlers.uploadHandler.deleteUpload())
			r.Get("/export", handlers.exportHandler.export())
			r.Post("/import", handlers.exportHandler.importDocument())
		})
	})
}

func healthCheck(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthCheck").Logger())

	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]string{
			"status": "ok",
			"uptime": time.Since(startupTime).Round(time.Second).String(),
		})
	}
}
