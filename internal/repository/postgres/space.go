package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/jackc/pgx/v5"
)

// SpaceRepository handles space data access
type SpaceRepository struct {
	db *DB
}

// Create creates a new space
func (r *SpaceRepository) Create(ctx context.Context, space *domain.Space) error {
	query := `
		INSERT INTO spaces (space_id, name, created_date)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.conn(ctx).Exec(ctx, query, space.SpaceID, space.Name, space.CreatedDate)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Message: "space already exists"}
		}
		return fmt.Errorf("failed to create space: %w", err)
	}

	return nil
}

// Get retrieves a space by ID
func (r *SpaceRepository) Get(ctx context.Context, spaceID string) (*domain.Space, error) {
	query := `SELECT space_id, name, created_date FROM spaces WHERE space_id = $1`

	var space domain.Space
	err := r.db.conn(ctx).QueryRow(ctx, query, spaceID).Scan(&space.SpaceID, &space.Name, &space.CreatedDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	return &space, nil
}

// ListByUser retrieves all spaces for a user
func (r *SpaceRepository) ListByUser(ctx context.Context, userID string) ([]domain.SpaceWithRole, error) {
	query := `
		SELECT s.space_id, s.name, s.created_date, m.role
		FROM spaces s
		INNER JOIN space_members m ON s.space_id = m.space_id
		WHERE m.user_id = $1
		ORDER BY s.name
	`

	rows, err := r.db.conn(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	defer rows.Close()

	spaces := []domain.SpaceWithRole{}
	for rows.Next() {
		var s domain.SpaceWithRole
		if err := rows.Scan(&s.SpaceID, &s.Name, &s.CreatedDate, &s.Role); err != nil {
			return nil, fmt.Errorf("failed to scan space: %w", err)
		}
		spaces = append(spaces, s)
	}

	return spaces, rows.Err()
}

// AddMember adds a member to a space
func (r *SpaceRepository) AddMember(ctx context.Context, member *domain.SpaceMember) error {
	query := `
		INSERT INTO space_members (space_id, user_id, role, created_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (space_id, user_id) DO UPDATE SET role = $3
	`

	_, err := r.db.conn(ctx).Exec(ctx, query, member.SpaceID, member.UserID, member.Role, member.CreatedDate)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	return nil
}

// GetMember retrieves a space member
func (r *SpaceRepository) GetMember(ctx context.Context, spaceID, userID string) (*domain.SpaceMember, error) {
	query := `
		SELECT space_id, user_id, role, created_date
		FROM space_members
		WHERE space_id = $1 AND user_id = $2
	`

	var member domain.SpaceMember
	err := r.db.conn(ctx).QueryRow(ctx, query, spaceID, userID).Scan(
		&member.SpaceID,
		&member.UserID,
		&member.Role,
		&member.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &member, nil
}
