package mongo

import (
	"context"
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FolderRepository handles content folder data access
type FolderRepository struct {
	coll *mongo.Collection
}

// Create creates a new folder
func (r *FolderRepository) Create(ctx context.Context, folder *domain.Folder) error {
	if _, err := r.coll.InsertOne(ctx, folder); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConflictError{Message: "folder already exists"}
		}
		return fmt.Errorf("failed to create folder: %w", err)
	}
	return nil
}

// Get retrieves a folder of a space
func (r *FolderRepository) Get(ctx context.Context, spaceID, folderID string) (*domain.Folder, error) {
	var folder domain.Folder
	found, err := findOne(ctx, r.coll, bson.M{"spaceId": spaceID, "folderId": folderID}, &folder)
	if err != nil {
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &folder, nil
}

// ListBySpace retrieves all folders of a space ordered by name
func (r *FolderRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.Folder, error) {
	folders := []domain.Folder{}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if err := findAll(ctx, r.coll, bson.M{"spaceId": spaceID}, &folders, opts); err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

// Delete removes a folder of a space
func (r *FolderRepository) Delete(ctx context.Context, spaceID, folderID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"spaceId": spaceID, "folderId": folderID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete folder: %w", err)
	}
	return res.DeletedCount, nil
}
