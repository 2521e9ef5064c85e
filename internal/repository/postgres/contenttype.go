package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ContentTypeRepository handles content type data access
type ContentTypeRepository struct {
	db *DB
}

// Create creates a new content type
func (r *ContentTypeRepository) Create(ctx context.Context, ct *domain.ContentType) error {
	query := `
		INSERT INTO content_types (space_id, content_type_id, name, hidden, enabled, created_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.conn(ctx).Exec(ctx, query, ct.SpaceID, ct.ContentTypeID, ct.Name, ct.Hidden, ct.Enabled, ct.CreatedDate)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Message: "content type already exists"}
		}
		return fmt.Errorf("failed to create content type: %w", err)
	}

	return nil
}

// Get retrieves a content type of a space
func (r *ContentTypeRepository) Get(ctx context.Context, spaceID, contentTypeID string) (*domain.ContentType, error) {
	query := `
		SELECT space_id, content_type_id, name, hidden, enabled, created_date
		FROM content_types
		WHERE space_id = $1 AND content_type_id = $2
	`

	var ct domain.ContentType
	err := r.db.conn(ctx).QueryRow(ctx, query, spaceID, contentTypeID).Scan(
		&ct.SpaceID, &ct.ContentTypeID, &ct.Name, &ct.Hidden, &ct.Enabled, &ct.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}

	return &ct, nil
}

// ListBySpace retrieves all content types of a space ordered by name
func (r *ContentTypeRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.ContentType, error) {
	query := `
		SELECT space_id, content_type_id, name, hidden, enabled, created_date
		FROM content_types
		WHERE space_id = $1
		ORDER BY name
	`

	rows, err := r.db.conn(ctx).Query(ctx, query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}
	defer rows.Close()

	contentTypes := []domain.ContentType{}
	for rows.Next() {
		var ct domain.ContentType
		if err := rows.Scan(&ct.SpaceID, &ct.ContentTypeID, &ct.Name, &ct.Hidden, &ct.Enabled, &ct.CreatedDate); err != nil {
			return nil, fmt.Errorf("failed to scan content type: %w", err)
		}
		contentTypes = append(contentTypes, ct)
	}

	return contentTypes, rows.Err()
}
