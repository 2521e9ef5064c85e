package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RoleCache caches space roles between requests
type RoleCache interface {
	Get(ctx context.Context, spaceID, userID string) (string, bool, error)
	Set(ctx context.Context, spaceID, userID, role string) error
	Invalidate(ctx context.Context, spaceID, userID string) error
}

// SpaceService handles space operations
type SpaceService struct {
	store repository.Store
	roles RoleCache
}

// NewSpaceService creates a new space service. roles may be nil.
func NewSpaceService(store repository.Store, roles RoleCache) *SpaceService {
	return &SpaceService{store: store, roles: roles}
}

// Create creates a new space and adds the creator as owner
func (s *SpaceService) Create(ctx context.Context, user domain.User, input domain.SpaceCreate) (*domain.Space, error) {
	now := time.Now()
	space := &domain.Space{
		SpaceID:     uuid.NewString(),
		Name:        input.Name,
		CreatedDate: now,
	}

	err := s.store.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.Spaces().Create(ctx, space); err != nil {
			return fmt.Errorf("failed to create space: %w", err)
		}

		member := &domain.SpaceMember{
			SpaceID:     space.SpaceID,
			UserID:      user.ID,
			Role:        domain.RoleOwner,
			CreatedDate: now,
		}
		if err := s.store.Spaces().AddMember(ctx, member); err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return space, nil
}

// List retrieves all spaces the user belongs to
func (s *SpaceService) List(ctx context.Context, userID string) ([]domain.SpaceWithRole, error) {
	spaces, err := s.store.Spaces().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	return spaces, nil
}

// Role returns the role of a user in a space, or "" when not a member
func (s *SpaceService) Role(ctx context.Context, spaceID, userID string) (string, error) {
	if s.roles != nil {
		role, ok, err := s.roles.Get(ctx, spaceID, userID)
		if err != nil {
			log.Warn().Err(err).Str("space_id", spaceID).Msg("role cache lookup failed")
		} else if ok {
			return role, nil
		}
	}

	member, err := s.store.Spaces().GetMember(ctx, spaceID, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return "", nil
	}

	if s.roles != nil {
		if err := s.roles.Set(ctx, spaceID, userID, member.Role); err != nil {
			log.Warn().Err(err).Str("space_id", spaceID).Msg("role cache store failed")
		}
	}

	return member.Role, nil
}

// Authorize checks that the user holds at least the required role in the space
func (s *SpaceService) Authorize(ctx context.Context, spaceID, userID, required string) (string, error) {
	role, err := s.Role(ctx, spaceID, userID)
	if err != nil {
		return "", err
	}
	if role == "" {
		return "", &domain.ForbiddenError{Message: "not a member of this space"}
	}
	if !domain.HasRole(role, required) {
		return "", &domain.ForbiddenError{Message: "insufficient role"}
	}
	return role, nil
}
