package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/listing"
	"github.com/Rrens/content-portal/internal/repository"
	"github.com/google/uuid"
)

// PhraseNewContentTitle is the title given to freshly created drafts
const PhraseNewContentTitle = "content_page_new_title"

// ContentQuery selects what a content listing shows
type ContentQuery struct {
	Filter     listing.ContentFilter
	ShowHidden bool
}

// ContentListing is the content page of a space
type ContentListing struct {
	Mode                  listing.Mode          `json:"mode"`
	Items                 []domain.ContentItem  `json:"items"`
	Facets                listing.ContentFacets `json:"facets"`
	CreatableContentTypes []string              `json:"creatableContentTypes"`
}

// ContentService handles content operations
type ContentService struct {
	store repository.Store
}

// NewContentService creates a new content service
func NewContentService(store repository.Store) *ContentService {
	return &ContentService{store: store}
}

// List loads the content of a space and evaluates q against it.
// Facets are derived from every visible item, not only the filtered ones.
func (s *ContentService) List(ctx context.Context, spaceID string, q ContentQuery, now time.Time, t listing.Translate) (*ContentListing, error) {
	contentTypes, err := s.store.ContentTypes().ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}

	folders, err := s.store.Folders().ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	contents, err := s.store.Contents().ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	items := resolveContent(contents, contentTypes, folders)
	visible := listing.VisibleContent(items, contentTypes, q.ShowHidden)

	return &ContentListing{
		Mode:                  listing.ContentMode(len(contentTypes), len(contents)),
		Items:                 listing.FilterContent(visible, q.Filter, now),
		Facets:                listing.ExtractContentFacets(visible, now, t),
		CreatableContentTypes: listing.CreatableContentTypes(contentTypes, folders, q.Filter.FolderID, q.Filter.ContentTypeID, q.ShowHidden),
	}, nil
}

// Create creates a draft of the given content type, optionally inside a folder
func (s *ContentService) Create(ctx context.Context, spaceID string, user domain.User, input domain.ContentCreate, t listing.Translate) (*domain.Content, error) {
	ct, err := s.store.ContentTypes().Get(ctx, spaceID, input.ContentTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}
	if ct == nil {
		return nil, &domain.ValidationError{Message: "unknown content type"}
	}
	if !ct.Enabled {
		return nil, &domain.ValidationError{Message: "content type is disabled"}
	}

	if input.FolderID != "" {
		folder, err := s.store.Folders().Get(ctx, spaceID, input.FolderID)
		if err != nil {
			return nil, fmt.Errorf("failed to get folder: %w", err)
		}
		if folder == nil {
			return nil, &domain.ValidationError{Message: "unknown folder"}
		}
		if !folder.Allows(ct.ContentTypeID) {
			return nil, &domain.ValidationError{Message: "content type is not allowed in this folder"}
		}
	}

	title := input.Title
	if title == "" && t != nil {
		title = t(PhraseNewContentTitle)
	}

	now := time.Now()
	content := &domain.Content{
		ContentID:        uuid.NewString(),
		SpaceID:          spaceID,
		ContentTypeID:    ct.ContentTypeID,
		FolderID:         input.FolderID,
		Title:            title,
		Status:           domain.ContentStatusDraft,
		ModifiedDate:     now,
		ModifiedUserID:   user.ID,
		ModifiedUserName: user.DisplayName(),
		CreatedDate:      now,
	}

	if err := s.store.Contents().Create(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	return content, nil
}

// resolveContent attaches folder and content type names to each record
func resolveContent(contents []domain.Content, contentTypes []domain.ContentType, folders []domain.Folder) []domain.ContentItem {
	typeNames := make(map[string]string, len(contentTypes))
	for _, ct := range contentTypes {
		typeNames[ct.ContentTypeID] = ct.Name
	}
	folderNames := make(map[string]string, len(folders))
	for _, f := range folders {
		folderNames[f.FolderID] = f.Name
	}

	items := make([]domain.ContentItem, 0, len(contents))
	for _, c := range contents {
		item := domain.ContentItem{
			Content:         c,
			ContentTypeName: typeNames[c.ContentTypeID],
		}
		if c.FolderID != "" {
			item.FolderName = folderNames[c.FolderID]
		}
		items = append(items, item)
	}
	return items
}
