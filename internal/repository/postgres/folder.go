package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/jackc/pgx/v5"
)

// FolderRepository handles content folder data access
type FolderRepository struct {
	db *DB
}

// Create creates a new folder
func (r *FolderRepository) Create(ctx context.Context, folder *domain.Folder) error {
	query := `
		INSERT INTO folders (space_id, folder_id, name, content_types, created_date)
		VALUES ($1, $2, $3, $4, $5)
	`

	contentTypes := folder.ContentTypes
	if contentTypes == nil {
		contentTypes = []string{}
	}

	_, err := r.db.conn(ctx).Exec(ctx, query,
		folder.SpaceID,
		folder.FolderID,
		folder.Name,
		contentTypes,
		folder.CreatedDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Message: "folder already exists"}
		}
		return fmt.Errorf("failed to create folder: %w", err)
	}

	return nil
}

// Get retrieves a folder of a space
func (r *FolderRepository) Get(ctx context.Context, spaceID, folderID string) (*domain.Folder, error) {
	query := `
		SELECT space_id, folder_id, name, content_types, created_date
		FROM folders
		WHERE space_id = $1 AND folder_id = $2
	`

	var folder domain.Folder
	err := r.db.conn(ctx).QueryRow(ctx, query, spaceID, folderID).Scan(
		&folder.SpaceID,
		&folder.FolderID,
		&folder.Name,
		&folder.ContentTypes,
		&folder.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}

	return &folder, nil
}

// ListBySpace retrieves all folders of a space ordered by name
func (r *FolderRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.Folder, error) {
	query := `
		SELECT space_id, folder_id, name, content_types, created_date
		FROM folders
		WHERE space_id = $1
		ORDER BY name
	`

	rows, err := r.db.conn(ctx).Query(ctx, query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	folders := []domain.Folder{}
	for rows.Next() {
		var folder domain.Folder
		if err := rows.Scan(
			&folder.SpaceID,
			&folder.FolderID,
			&folder.Name,
			&folder.ContentTypes,
			&folder.CreatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	return folders, rows.Err()
}

// Delete removes a folder of a space
func (r *FolderRepository) Delete(ctx context.Context, spaceID, folderID string) (int64, error) {
	query := `DELETE FROM folders WHERE space_id = $1 AND folder_id = $2`

	tag, err := r.db.conn(ctx).Exec(ctx, query, spaceID, folderID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete folder: %w", err)
	}

	return tag.RowsAffected(), nil
}
