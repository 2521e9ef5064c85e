package mongo

import (
	"context"
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SpaceRepository handles space data access
type SpaceRepository struct {
	spaces  *mongo.Collection
	members *mongo.Collection
}

// Create creates a new space
func (r *SpaceRepository) Create(ctx context.Context, space *domain.Space) error {
	if _, err := r.spaces.InsertOne(ctx, space); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConflictError{Message: "space already exists"}
		}
		return fmt.Errorf("failed to create space: %w", err)
	}
	return nil
}

// Get retrieves a space by ID
func (r *SpaceRepository) Get(ctx context.Context, spaceID string) (*domain.Space, error) {
	var space domain.Space
	found, err := findOne(ctx, r.spaces, bson.M{"spaceId": spaceID}, &space)
	if err != nil {
		return nil, fmt.Errorf("failed to get space: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &space, nil
}

// ListByUser retrieves all spaces the user is a member of
func (r *SpaceRepository) ListByUser(ctx context.Context, userID string) ([]domain.SpaceWithRole, error) {
	var members []domain.SpaceMember
	if err := findAll(ctx, r.members, bson.M{"userId": userID}, &members); err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	if len(members) == 0 {
		return []domain.SpaceWithRole{}, nil
	}

	roles := make(map[string]string, len(members))
	ids := make([]string, 0, len(members))
	for _, m := range members {
		roles[m.SpaceID] = m.Role
		ids = append(ids, m.SpaceID)
	}

	var spaces []domain.Space
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if err := findAll(ctx, r.spaces, bson.M{"spaceId": bson.M{"$in": ids}}, &spaces, opts); err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}

	result := make([]domain.SpaceWithRole, 0, len(spaces))
	for _, s := range spaces {
		result = append(result, domain.SpaceWithRole{Space: s, Role: roles[s.SpaceID]})
	}
	return result, nil
}

// AddMember adds or updates a member of a space
func (r *SpaceRepository) AddMember(ctx context.Context, member *domain.SpaceMember) error {
	filter := bson.M{"spaceId": member.SpaceID, "userId": member.UserID}
	update := bson.M{
		"$set":         bson.M{"role": member.Role},
		"$setOnInsert": bson.M{"createdDate": member.CreatedDate},
	}
	if _, err := r.members.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// GetMember retrieves a space member
func (r *SpaceRepository) GetMember(ctx context.Context, spaceID, userID string) (*domain.SpaceMember, error) {
	var member domain.SpaceMember
	found, err := findOne(ctx, r.members, bson.M{"spaceId": spaceID, "userId": userID}, &member)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &member, nil
}
