package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FolderService handles content folder operations
type FolderService struct {
	store repository.Store
}

// NewFolderService creates a new folder service
func NewFolderService(store repository.Store) *FolderService {
	return &FolderService{store: store}
}

// List retrieves all folders of a space
func (s *FolderService) List(ctx context.Context, spaceID string) ([]domain.Folder, error) {
	folders, err := s.store.Folders().ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

// Create creates a folder. Every allowed content type must exist in the space.
func (s *FolderService) Create(ctx context.Context, spaceID string, input domain.FolderCreate) (*domain.Folder, error) {
	for _, ctID := range input.ContentTypes {
		ct, err := s.store.ContentTypes().Get(ctx, spaceID, ctID)
		if err != nil {
			return nil, fmt.Errorf("failed to get content type: %w", err)
		}
		if ct == nil {
			return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown content type %s", ctID)}
		}
	}

	contentTypes := input.ContentTypes
	if contentTypes == nil {
		contentTypes = []string{}
	}

	folder := &domain.Folder{
		FolderID:     uuid.NewString(),
		SpaceID:      spaceID,
		Name:         input.Name,
		ContentTypes: contentTypes,
		CreatedDate:  time.Now(),
	}

	if err := s.store.Folders().Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return folder, nil
}

// Delete removes a folder and applies mode to the content inside it.
// DETACH clears the folder reference, CASCADE deletes the content.
// PROMPT must be resolved by the caller before reaching the server.
func (s *FolderService) Delete(ctx context.Context, spaceID, folderID string, mode domain.FolderDeleteMode) (*domain.FolderDeleteResult, error) {
	switch mode {
	case domain.FolderDeleteDetach, domain.FolderDeleteCascade:
	case domain.FolderDeletePrompt:
		return nil, &domain.ValidationError{Message: "folder delete mode PROMPT must be resolved by the client"}
	default:
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown folder delete mode %q", mode)}
	}

	result := &domain.FolderDeleteResult{FolderID: folderID, Mode: mode}

	err := s.store.WithinTransaction(ctx, func(ctx context.Context) error {
		folder, err := s.store.Folders().Get(ctx, spaceID, folderID)
		if err != nil {
			return fmt.Errorf("failed to get folder: %w", err)
		}
		if folder == nil {
			return &domain.NotFoundError{Message: "folder not found"}
		}

		deleted, err := s.store.Folders().Delete(ctx, spaceID, folderID)
		if err != nil {
			return fmt.Errorf("failed to delete folder: %w", err)
		}
		if deleted == 0 {
			// Removed concurrently after the lookup
			return &domain.NotFoundError{Message: "folder not found"}
		}

		var affected int64
		if mode == domain.FolderDeleteCascade {
			affected, err = s.store.Contents().DeleteByFolder(ctx, spaceID, folderID)
		} else {
			affected, err = s.store.Contents().DetachFolder(ctx, spaceID, folderID)
		}
		if err != nil {
			return fmt.Errorf("failed to update folder content: %w", err)
		}

		result.ContentAffected = affected
		return nil
	})
	if err != nil {
		var httpErr domain.HTTPError
		if !errors.As(err, &httpErr) {
			log.Error().Err(err).
				Str("space_id", spaceID).
				Str("folder_id", folderID).
				Str("mode", string(mode)).
				Msg("folder delete failed")
		}
		return nil, err
	}

	log.Info().
		Str("space_id", spaceID).
		Str("folder_id", folderID).
		Str("mode", string(mode)).
		Int64("content_affected", result.ContentAffected).
		Msg("folder deleted")

	return result, nil
}
