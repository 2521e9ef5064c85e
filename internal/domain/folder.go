package domain

import (
	"fmt"
	"strings"
	"time"
)

// Folder groups content items within a space
type Folder struct {
	FolderID     string    `json:"folderId" bson:"folderId"`
	SpaceID      string    `json:"spaceId" bson:"spaceId"`
	Name         string    `json:"name" bson:"name"`
	ContentTypes []string  `json:"contentTypes" bson:"contentTypes"`
	CreatedDate  time.Time `json:"createdDate" bson:"createdDate"`
}

// Allows reports whether content of the given type may live in the folder.
// An empty allow-list permits every type.
func (f *Folder) Allows(contentTypeID string) bool {
	if len(f.ContentTypes) == 0 {
		return true
	}
	for _, id := range f.ContentTypes {
		if id == contentTypeID {
			return true
		}
	}
	return false
}

// FolderCreate represents folder creation data
type FolderCreate struct {
	Name         string   `json:"name" validate:"required,max=255"`
	ContentTypes []string `json:"contentTypes" validate:"omitempty,dive,required"`
}

// FolderDeleteMode selects what happens to content when its folder is deleted
type FolderDeleteMode string

const (
	// FolderDeleteDetach clears the folder reference on contained content
	FolderDeleteDetach FolderDeleteMode = "DETACH"
	// FolderDeleteCascade deletes contained content
	FolderDeleteCascade FolderDeleteMode = "CASCADE"
	// FolderDeletePrompt leaves the choice to the user; clients resolve it
	// to DETACH or CASCADE before calling the API
	FolderDeletePrompt FolderDeleteMode = "PROMPT"
)

// DefaultFolderDeleteMode is used when nothing is configured
const DefaultFolderDeleteMode = FolderDeleteDetach

// ParseFolderDeleteMode parses a configured mode. Empty input yields the default.
func ParseFolderDeleteMode(s string) (FolderDeleteMode, error) {
	switch mode := FolderDeleteMode(strings.ToUpper(strings.TrimSpace(s))); mode {
	case "":
		return DefaultFolderDeleteMode, nil
	case FolderDeleteDetach, FolderDeleteCascade, FolderDeletePrompt:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown folder delete mode %q", s)
	}
}

// FolderDeleteResult describes the mutations applied by a folder deletion
type FolderDeleteResult struct {
	FolderID        string           `json:"folderId"`
	Mode            FolderDeleteMode `json:"mode"`
	ContentAffected int64            `json:"contentAffected"`
}
