package api

import (
	"net/http"

	"github.com/Rrens/content-portal/internal/api/handler"
	customMiddleware "github.com/Rrens/content-portal/internal/api/middleware"
	"github.com/Rrens/content-portal/internal/app"
	"github.com/Rrens/content-portal/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router
func NewRouter(a *app.App) http.Handler {
	cfg := a.Config
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.Server.MiddlewareTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))
	}

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMiddleware := customMiddleware.NewAuthMiddleware(a.JWT)

	var limiter customMiddleware.Limiter
	if a.RateLimiter != nil {
		limiter = a.RateLimiter
	}
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(limiter)

	spaceHandler := handler.NewSpaceHandler(a.Spaces)
	folderHandler := handler.NewFolderHandler(a.Folders)
	contentTypeHandler := handler.NewContentTypeHandler(a.ContentTypes)
	contentHandler := handler.NewContentHandler(a.Contents, a.Translator, a.Now)
	assetHandler := handler.NewAssetHandler(a.Assets, a.Translator, cfg.Storage.MaxUploadMB<<20)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(a.Store))
		r.Get("/runtime-config", handler.RuntimeConfig(a.RuntimeConfig))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Route("/space", func(r chi.Router) {
				r.Get("/", spaceHandler.List)
				r.Post("/", spaceHandler.Create)

				r.Route("/{spaceId}", func(r chi.Router) {
					r.Use(customMiddleware.RequireSpaceRole(a.Spaces, domain.RoleAny))

					r.Route("/folder", func(r chi.Router) {
						r.Get("/", folderHandler.List)
						r.Post("/", folderHandler.Create)
						r.Delete("/{folderId}", folderHandler.Delete)
					})

					r.Route("/contenttype", func(r chi.Router) {
						r.Get("/", contentTypeHandler.List)
						r.With(customMiddleware.RequireSpaceRole(a.Spaces, domain.RoleAdmin)).Post("/", contentTypeHandler.Create)
					})

					r.Route("/content", func(r chi.Router) {
						r.Get("/", contentHandler.List)
						r.Post("/", contentHandler.Create)
					})

					r.Route("/asset", func(r chi.Router) {
						r.Get("/", assetHandler.List)
						r.Post("/", assetHandler.Upload)
					})

					r.Route("/assetfolder", func(r chi.Router) {
						r.Get("/", assetHandler.ListFolders)
						r.Post("/", assetHandler.CreateFolder)
					})
				})
			})
		})
	})

	return r
}
