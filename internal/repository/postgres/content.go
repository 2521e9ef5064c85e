package postgres

import (
	"context"
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
)

// ContentRepository handles content data access
type ContentRepository struct {
	db *DB
}

// Create creates a new content item
func (r *ContentRepository) Create(ctx context.Context, content *domain.Content) error {
	query := `
		INSERT INTO contents (
			space_id, content_id, content_type_id, folder_id, title, status,
			scheduled_publish_date, modified_date, modified_user_id, modified_user_name,
			managed_by_module, created_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.conn(ctx).Exec(ctx, query,
		content.SpaceID,
		content.ContentID,
		content.ContentTypeID,
		nullable(content.FolderID),
		content.Title,
		string(content.Status),
		content.ScheduledPublishDate,
		content.ModifiedDate,
		content.ModifiedUserID,
		content.ModifiedUserName,
		content.ManagedByModule,
		content.CreatedDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Message: "content already exists"}
		}
		return fmt.Errorf("failed to create content: %w", err)
	}

	return nil
}

// ListBySpace retrieves all content of a space, most recently modified first
func (r *ContentRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.Content, error) {
	query := `
		SELECT space_id, content_id, content_type_id, folder_id, title, status,
		       scheduled_publish_date, modified_date, modified_user_id, modified_user_name,
		       managed_by_module, created_date
		FROM contents
		WHERE space_id = $1
		ORDER BY modified_date DESC
	`

	rows, err := r.db.conn(ctx).Query(ctx, query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	defer rows.Close()

	contents := []domain.Content{}
	for rows.Next() {
		var c domain.Content
		var folderID *string
		var status string

		if err := rows.Scan(
			&c.SpaceID,
			&c.ContentID,
			&c.ContentTypeID,
			&folderID,
			&c.Title,
			&status,
			&c.ScheduledPublishDate,
			&c.ModifiedDate,
			&c.ModifiedUserID,
			&c.ModifiedUserName,
			&c.ManagedByModule,
			&c.CreatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan content: %w", err)
		}

		c.FolderID = deref(folderID)
		c.Status = domain.ContentStatus(status)
		contents = append(contents, c)
	}

	return contents, rows.Err()
}

// DeleteByFolder removes all content in a folder
func (r *ContentRepository) DeleteByFolder(ctx context.Context, spaceID, folderID string) (int64, error) {
	query := `DELETE FROM contents WHERE space_id = $1 AND folder_id = $2`

	tag, err := r.db.conn(ctx).Exec(ctx, query, spaceID, folderID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete folder content: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DetachFolder clears the folder reference on all content in a folder
func (r *ContentRepository) DetachFolder(ctx context.Context, spaceID, folderID string) (int64, error) {
	query := `UPDATE contents SET folder_id = NULL WHERE space_id = $1 AND folder_id = $2`

	tag, err := r.db.conn(ctx).Exec(ctx, query, spaceID, folderID)
	if err != nil {
		return 0, fmt.Errorf("failed to detach folder content: %w", err)
	}

	return tag.RowsAffected(), nil
}
