package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/repository"
	"github.com/google/uuid"
)

// ContentTypeService handles content type operations
type ContentTypeService struct {
	store repository.Store
}

// NewContentTypeService creates a new content type service
func NewContentTypeService(store repository.Store) *ContentTypeService {
	return &ContentTypeService{store: store}
}

// List retrieves all content types of a space
func (s *ContentTypeService) List(ctx context.Context, spaceID string) ([]domain.ContentType, error) {
	contentTypes, err := s.store.ContentTypes().ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}
	return contentTypes, nil
}

// Create creates a content type, enabled unless stated otherwise
func (s *ContentTypeService) Create(ctx context.Context, spaceID string, input domain.ContentTypeCreate) (*domain.ContentType, error) {
	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	ct := &domain.ContentType{
		ContentTypeID: uuid.NewString(),
		SpaceID:       spaceID,
		Name:          input.Name,
		Hidden:        input.Hidden,
		Enabled:       enabled,
		CreatedDate:   time.Now(),
	}

	if err := s.store.ContentTypes().Create(ctx, ct); err != nil {
		return nil, fmt.Errorf("failed to create content type: %w", err)
	}

	return ct, nil
}
