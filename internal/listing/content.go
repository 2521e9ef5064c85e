package listing

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rrens/content-portal/internal/domain"
)

// StatusFilter selects content by publication state
type StatusFilter string

const (
	StatusDraft     StatusFilter = "draft"
	StatusPublished StatusFilter = "published"
	StatusScheduled StatusFilter = "scheduled"
)

// ParseStatusFilter parses a content status filter. Empty input means no constraint.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(s); f {
	case "", StatusDraft, StatusPublished, StatusScheduled:
		return f, nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// Matches reports whether the item is in the selected state.
// Scheduled and draft partition the stored drafts.
func (f StatusFilter) Matches(c *domain.Content) bool {
	switch f {
	case "":
		return true
	case StatusScheduled:
		return c.IsScheduled()
	case StatusDraft:
		return c.Status == domain.ContentStatusDraft && c.ScheduledPublishDate == nil
	case StatusPublished:
		return c.Status == domain.ContentStatusPublished
	}
	return false
}

// ContentFilter holds the active content listing constraints.
// Empty fields do not constrain.
type ContentFilter struct {
	FolderID      string
	ContentTypeID string
	AuthorID      string
	Status        StatusFilter
	Date          DateBucket
	Search        string
}

// Match reports whether item passes every active constraint
func (f ContentFilter) Match(item *domain.ContentItem, now time.Time) bool {
	if f.FolderID != "" && item.FolderID != f.FolderID {
		return false
	}
	if f.ContentTypeID != "" && item.ContentTypeID != f.ContentTypeID {
		return false
	}
	if f.AuthorID != "" && item.ModifiedUserID != f.AuthorID {
		return false
	}
	if !f.Status.Matches(&item.Content) {
		return false
	}
	if f.Date != "" && !f.Date.Contains(item.ModifiedDate, now) {
		return false
	}
	if f.Search != "" {
		return matchesSearch(f.Search, item.Title, item.ModifiedUserName, item.FolderName)
	}
	return true
}

// VisibleContent drops module-managed items and, unless showHidden is set,
// items whose content type is hidden. Items with an unknown content type stay.
func VisibleContent(items []domain.ContentItem, contentTypes []domain.ContentType, showHidden bool) []domain.ContentItem {
	hidden := make(map[string]bool, len(contentTypes))
	for _, ct := range contentTypes {
		hidden[ct.ContentTypeID] = ct.Hidden
	}

	visible := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if item.ManagedByModule {
			continue
		}
		if !showHidden && hidden[item.ContentTypeID] {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// FilterContent applies f to already visible items
func FilterContent(items []domain.ContentItem, f ContentFilter, now time.Time) []domain.ContentItem {
	out := make([]domain.ContentItem, 0, len(items))
	for i := range items {
		if f.Match(&items[i], now) {
			out = append(out, items[i])
		}
	}
	return out
}

// CreatableContentTypes returns the ids of content types a user may create
// given the active folder and content type filters
func CreatableContentTypes(contentTypes []domain.ContentType, folders []domain.Folder, folderID, contentTypeID string, showHidden bool) []string {
	var folder *domain.Folder
	if folderID != "" {
		for i := range folders {
			if folders[i].FolderID == folderID {
				folder = &folders[i]
				break
			}
		}
		if folder == nil {
			return []string{}
		}
	}

	ids := []string{}
	for _, ct := range contentTypes {
		if !showHidden && ct.Hidden {
			continue
		}
		if !ct.Enabled {
			continue
		}
		if contentTypeID != "" && ct.ContentTypeID != contentTypeID {
			continue
		}
		if folder != nil && !folder.Allows(ct.ContentTypeID) {
			continue
		}
		ids = append(ids, ct.ContentTypeID)
	}
	return ids
}

func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
