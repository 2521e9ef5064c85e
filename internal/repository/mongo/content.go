package mongo

import (
	"context"
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentRepository handles content data access
type ContentRepository struct {
	coll *mongo.Collection
}

// Create creates a new content item
func (r *ContentRepository) Create(ctx context.Context, content *domain.Content) error {
	if _, err := r.coll.InsertOne(ctx, content); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConflictError{Message: "content already exists"}
		}
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

// ListBySpace retrieves all content of a space, most recently modified first
func (r *ContentRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.Content, error) {
	contents := []domain.Content{}
	opts := options.Find().SetSort(bson.D{{Key: "modifiedDate", Value: -1}})
	if err := findAll(ctx, r.coll, bson.M{"spaceId": spaceID}, &contents, opts); err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return contents, nil
}

// DeleteByFolder removes all content in a folder
func (r *ContentRepository) DeleteByFolder(ctx context.Context, spaceID, folderID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"spaceId": spaceID, "folderId": folderID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete folder content: %w", err)
	}
	return res.DeletedCount, nil
}

// DetachFolder unsets the folder reference on all content in a folder
func (r *ContentRepository) DetachFolder(ctx context.Context, spaceID, folderID string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"spaceId": spaceID, "folderId": folderID},
		bson.M{"$unset": bson.M{"folderId": ""}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to detach folder content: %w", err)
	}
	return res.ModifiedCount, nil
}
