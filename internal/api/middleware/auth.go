package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Rrens/content-portal/internal/api/response"
	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/security"
	"github.com/go-chi/chi/v5"
)

type contextKey string

const (
	UserKey      contextKey = "user"
	SpaceRoleKey contextKey = "spaceRole"
)

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtManager *security.JWTManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *security.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// Authenticate validates the JWT token
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(w, "invalid authorization header format")
			return
		}

		claims, err := m.jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "invalid or expired token")
			return
		}

		ctx := WithUser(r.Context(), claims.User())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUser stores the authenticated user in ctx
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// GetUser gets the authenticated user from context
func GetUser(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(UserKey).(domain.User)
	return user, ok
}

// GetSpaceRole gets the caller's role in the current space
func GetSpaceRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(SpaceRoleKey).(string)
	return role, ok
}

// SpaceAuthorizer resolves a user's role in a space
type SpaceAuthorizer interface {
	Authorize(ctx context.Context, spaceID, userID, required string) (string, error)
}

// RequireSpaceRole rejects callers without the required role in {spaceId}
func RequireSpaceRole(spaces SpaceAuthorizer, required string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				response.Unauthorized(w, "unauthorized")
				return
			}

			spaceID := chi.URLParam(r, "spaceId")
			if spaceID == "" {
				response.BadRequest(w, "missing space ID")
				return
			}

			role, err := spaces.Authorize(r.Context(), spaceID, user.ID, required)
			if err != nil {
				response.FromError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), SpaceRoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
