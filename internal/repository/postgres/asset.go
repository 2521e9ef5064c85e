package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/jackc/pgx/v5"
)

// AssetRepository handles asset data access
type AssetRepository struct {
	db *DB
}

// Create records an uploaded asset
func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO assets (
			space_id, asset_id, asset_folder_id, name, type, status, size,
			storage_path, modified_date, modified_user_id, modified_user_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.conn(ctx).Exec(ctx, query,
		asset.SpaceID,
		asset.AssetID,
		nullable(asset.AssetFolderID),
		asset.Name,
		asset.Type,
		string(asset.Status),
		asset.Size,
		asset.StoragePath,
		asset.ModifiedDate,
		asset.ModifiedUserID,
		asset.ModifiedUserName,
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// ListBySpace retrieves all assets of a space, most recently modified first
func (r *AssetRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.Asset, error) {
	query := `
		SELECT space_id, asset_id, asset_folder_id, name, type, status, size,
		       storage_path, modified_date, modified_user_id, modified_user_name
		FROM assets
		WHERE space_id = $1
		ORDER BY modified_date DESC
	`

	rows, err := r.db.conn(ctx).Query(ctx, query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.Asset{}
	for rows.Next() {
		var a domain.Asset
		var folderID *string
		var status string

		if err := rows.Scan(
			&a.SpaceID,
			&a.AssetID,
			&folderID,
			&a.Name,
			&a.Type,
			&status,
			&a.Size,
			&a.StoragePath,
			&a.ModifiedDate,
			&a.ModifiedUserID,
			&a.ModifiedUserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}

		a.AssetFolderID = deref(folderID)
		a.Status = domain.AssetStatus(status)
		assets = append(assets, a)
	}

	return assets, rows.Err()
}

// AssetFolderRepository handles asset folder data access
type AssetFolderRepository struct {
	db *DB
}

// Create creates a new asset folder
func (r *AssetFolderRepository) Create(ctx context.Context, folder *domain.AssetFolder) error {
	query := `
		INSERT INTO asset_folders (space_id, asset_folder_id, name, created_date)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.conn(ctx).Exec(ctx, query, folder.SpaceID, folder.AssetFolderID, folder.Name, folder.CreatedDate)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Message: "asset folder already exists"}
		}
		return fmt.Errorf("failed to create asset folder: %w", err)
	}

	return nil
}

// Get retrieves an asset folder of a space
func (r *AssetFolderRepository) Get(ctx context.Context, spaceID, assetFolderID string) (*domain.AssetFolder, error) {
	query := `
		SELECT space_id, asset_folder_id, name, created_date
		FROM asset_folders
		WHERE space_id = $1 AND asset_folder_id = $2
	`

	var folder domain.AssetFolder
	err := r.db.conn(ctx).QueryRow(ctx, query, spaceID, assetFolderID).Scan(
		&folder.SpaceID, &folder.AssetFolderID, &folder.Name, &folder.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset folder: %w", err)
	}

	return &folder, nil
}

// ListBySpace retrieves all asset folders of a space ordered by name
func (r *AssetFolderRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.AssetFolder, error) {
	query := `
		SELECT space_id, asset_folder_id, name, created_date
		FROM asset_folders
		WHERE space_id = $1
		ORDER BY name
	`

	rows, err := r.db.conn(ctx).Query(ctx, query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset folders: %w", err)
	}
	defer rows.Close()

	folders := []domain.AssetFolder{}
	for rows.Next() {
		var folder domain.AssetFolder
		if err := rows.Scan(&folder.SpaceID, &folder.AssetFolderID, &folder.Name, &folder.CreatedDate); err != nil {
			return nil, fmt.Errorf("failed to scan asset folder: %w", err)
		}
		folders = append(folders, folder)
	}

	return folders, rows.Err()
}
