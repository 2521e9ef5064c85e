package mongo

import (
	"context"
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssetRepository handles asset data access
type AssetRepository struct {
	coll *mongo.Collection
}

// Create records an uploaded asset
func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	if _, err := r.coll.InsertOne(ctx, asset); err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// ListBySpace retrieves all assets of a space, most recently modified first
func (r *AssetRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.Asset, error) {
	assets := []domain.Asset{}
	opts := options.Find().SetSort(bson.D{{Key: "modifiedDate", Value: -1}})
	if err := findAll(ctx, r.coll, bson.M{"spaceId": spaceID}, &assets, opts); err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// AssetFolderRepository handles asset folder data access
type AssetFolderRepository struct {
	coll *mongo.Collection
}

// Create creates a new asset folder
func (r *AssetFolderRepository) Create(ctx context.Context, folder *domain.AssetFolder) error {
	if _, err := r.coll.InsertOne(ctx, folder); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConflictError{Message: "asset folder already exists"}
		}
		return fmt.Errorf("failed to create asset folder: %w", err)
	}
	return nil
}

// Get retrieves an asset folder of a space
func (r *AssetFolderRepository) Get(ctx context.Context, spaceID, assetFolderID string) (*domain.AssetFolder, error) {
	var folder domain.AssetFolder
	found, err := findOne(ctx, r.coll, bson.M{"spaceId": spaceID, "assetFolderId": assetFolderID}, &folder)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset folder: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &folder, nil
}

// ListBySpace retrieves all asset folders of a space ordered by name
func (r *AssetFolderRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.AssetFolder, error) {
	folders := []domain.AssetFolder{}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if err := findAll(ctx, r.coll, bson.M{"spaceId": spaceID}, &folders, opts); err != nil {
		return nil, fmt.Errorf("failed to list asset folders: %w", err)
	}
	return folders, nil
}
