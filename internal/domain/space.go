package domain

import "time"

// Space represents a tenant space
type Space struct {
	SpaceID     string    `json:"spaceId" bson:"spaceId"`
	Name        string    `json:"name" bson:"name"`
	CreatedDate time.Time `json:"createdDate" bson:"createdDate"`
}

// SpaceWithRole is a space as seen by one of its members
type SpaceWithRole struct {
	Space
	Role string `json:"role"`
}

// SpaceCreate represents space creation data
type SpaceCreate struct {
	Name string `json:"name" validate:"required,max=255"`
}

// SpaceMember represents space membership
type SpaceMember struct {
	SpaceID     string    `json:"spaceId" bson:"spaceId"`
	UserID      string    `json:"userId" bson:"userId"`
	Role        string    `json:"role" bson:"role"`
	CreatedDate time.Time `json:"createdDate" bson:"createdDate"`
}

// Role constants
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// RoleAny matches every role when checking space access
const RoleAny = "any"

// HasRole reports whether role satisfies the required role.
// Owners satisfy every requirement, admins satisfy admin and member.
func HasRole(role, required string) bool {
	switch required {
	case RoleAny, "":
		return role != ""
	case RoleOwner:
		return role == RoleOwner
	case RoleAdmin:
		return role == RoleOwner || role == RoleAdmin
	case RoleMember:
		return role == RoleOwner || role == RoleAdmin || role == RoleMember
	}
	return false
}
