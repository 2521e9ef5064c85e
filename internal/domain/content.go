package domain

import "time"

// ContentStatus is the stored publication status of a content item
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// Content is a structured record governed by a content type
type Content struct {
	ContentID            string        `json:"contentId" bson:"contentId"`
	SpaceID              string        `json:"spaceId" bson:"spaceId"`
	ContentTypeID        string        `json:"contentTypeId" bson:"contentTypeId"`
	FolderID             string        `json:"folderId,omitempty" bson:"folderId,omitempty"`
	Title                string        `json:"title" bson:"title"`
	Status               ContentStatus `json:"status" bson:"status"`
	ScheduledPublishDate *time.Time    `json:"scheduledPublishDate,omitempty" bson:"scheduledPublishDate,omitempty"`
	ModifiedDate         time.Time     `json:"modifiedDate" bson:"modifiedDate"`
	ModifiedUserID       string        `json:"modifiedUserId" bson:"modifiedUserId"`
	ModifiedUserName     string        `json:"modifiedUserName" bson:"modifiedUserName"`
	ManagedByModule      bool          `json:"managedByModule" bson:"managedByModule"`
	CreatedDate          time.Time     `json:"createdDate" bson:"createdDate"`
}

// IsScheduled reports whether the item is a draft with a publish date set
func (c *Content) IsScheduled() bool {
	return c.Status == ContentStatusDraft && c.ScheduledPublishDate != nil
}

// ContentItem is a content record with its references resolved for listing
type ContentItem struct {
	Content
	FolderName      string `json:"folderName,omitempty"`
	ContentTypeName string `json:"contentTypeName"`
}

// ContentCreate represents content creation data
type ContentCreate struct {
	ContentTypeID string `json:"contentTypeId" validate:"required"`
	FolderID      string `json:"folderId,omitempty"`
	Title         string `json:"title,omitempty" validate:"omitempty,max=500"`
}

// ContentType is a schema definition for content items
type ContentType struct {
	ContentTypeID string    `json:"contentTypeId" bson:"contentTypeId"`
	SpaceID       string    `json:"spaceId" bson:"spaceId"`
	Name          string    `json:"name" bson:"name"`
	Hidden        bool      `json:"hidden" bson:"hidden"`
	Enabled       bool      `json:"enabled" bson:"enabled"`
	CreatedDate   time.Time `json:"createdDate" bson:"createdDate"`
}

// ContentTypeCreate represents content type creation data
type ContentTypeCreate struct {
	Name    string `json:"name" validate:"required,max=255"`
	Hidden  bool   `json:"hidden"`
	Enabled *bool  `json:"enabled,omitempty"`
}
