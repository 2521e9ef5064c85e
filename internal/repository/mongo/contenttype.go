package mongo

import (
	"context"
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentTypeRepository handles content type data access
type ContentTypeRepository struct {
	coll *mongo.Collection
}

// Create creates a new content type
func (r *ContentTypeRepository) Create(ctx context.Context, contentType *domain.ContentType) error {
	if _, err := r.coll.InsertOne(ctx, contentType); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConflictError{Message: "content type already exists"}
		}
		return fmt.Errorf("failed to create content type: %w", err)
	}
	return nil
}

// Get retrieves a content type of a space
func (r *ContentTypeRepository) Get(ctx context.Context, spaceID, contentTypeID string) (*domain.ContentType, error) {
	var ct domain.ContentType
	found, err := findOne(ctx, r.coll, bson.M{"spaceId": spaceID, "contentTypeId": contentTypeID}, &ct)
	if err != nil {
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &ct, nil
}

// ListBySpace retrieves all content types of a space ordered by name
func (r *ContentTypeRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.ContentType, error) {
	contentTypes := []domain.ContentType{}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if err := findAll(ctx, r.coll, bson.M{"spaceId": spaceID}, &contentTypes, opts); err != nil {
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}
	return contentTypes, nil
}
