// Package app holds the process-wide dependencies built once at start-up
// and handed to the HTTP layer.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rrens/content-portal/internal/config"
	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/i18n"
	"github.com/Rrens/content-portal/internal/repository"
	"github.com/Rrens/content-portal/internal/repository/redis"
	"github.com/Rrens/content-portal/internal/security"
	"github.com/Rrens/content-portal/internal/service"
)

// App is the application context
type App struct {
	Config        *config.Config
	Store         repository.Store
	Redis         *redis.Client // nil when redis is disabled
	RateLimiter   *redis.RateLimiter
	RoleCache     *redis.RoleCache
	JWT           *security.JWTManager
	Phrases       *i18n.Catalog
	RuntimeConfig domain.RuntimeConfig
	Location      *time.Location

	Spaces       *service.SpaceService
	Folders      *service.FolderService
	ContentTypes *service.ContentTypeService
	Contents     *service.ContentService
	Assets       *service.AssetService

	// Now is the evaluation instant for date filters
	Now func() time.Time
}

// New wires the services on top of an opened store. redisClient may be nil.
func New(cfg *config.Config, store repository.Store, redisClient *redis.Client) (*App, error) {
	phrases, err := i18n.Load(cfg.Portal.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to load phrases: %w", err)
	}

	a := &App{
		Config:        cfg,
		Store:         store,
		Redis:         redisClient,
		JWT:           security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.AccessTokenTTL),
		Phrases:       phrases,
		RuntimeConfig: domain.RuntimeConfig{FolderDeleteMode: cfg.Portal.DeleteMode()},
		Location:      cfg.Portal.Location(),
	}
	a.Now = func() time.Time { return time.Now().In(a.Location) }

	var roles service.RoleCache
	if redisClient != nil {
		a.RateLimiter = redis.NewRateLimiter(redisClient, cfg.Security.RateLimit.RequestsPerMinute, cfg.Security.RateLimit.Burst)
		a.RoleCache = redis.NewRoleCache(redisClient, cfg.Redis.RoleTTL)
		roles = a.RoleCache
	}

	a.Spaces = service.NewSpaceService(store, roles)
	a.Folders = service.NewFolderService(store)
	a.ContentTypes = service.NewContentTypeService(store)
	a.Contents = service.NewContentService(store)
	a.Assets = service.NewAssetService(store, cfg.Storage.UploadDir, security.NewUploadValidator(cfg.Storage.MaxUploadMB<<20))

	return a, nil
}

// Translator returns the phrase lookup for an Accept-Language header
func (a *App) Translator(acceptLanguage string) func(key string) string {
	return a.Phrases.Translator(a.Phrases.Language(acceptLanguage))
}

// Close releases the store and redis connections
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close(ctx))
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	return errors.Join(errs...)
}
