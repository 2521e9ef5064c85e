package listing

import (
	"strings"
	"time"

	"github.com/Rrens/content-portal/internal/domain"
)

// Phrase keys used for facet names
const (
	PhraseUnknownContentFolder = "content_page_unknown_folder"
	PhraseUnknownAssetFolder   = "asset_home_unknown_folder"
)

// Translate resolves a phrase key to display text
type Translate func(key string) string

// FacetOption is one selectable filter value
type FacetOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ContentFacets are the filter options derived from a content list
type ContentFacets struct {
	Folders      []FacetOption `json:"folders"`
	ContentTypes []FacetOption `json:"contentTypes"`
	Authors      []FacetOption `json:"authors"`
	Dates        []FacetOption `json:"dates"`
}

// AssetFacets are the filter options derived from an asset list
type AssetFacets struct {
	Folders []FacetOption `json:"folders"`
	Types   []FacetOption `json:"types"`
}

// facetSet collects options deduplicated by id in first-seen order
type facetSet struct {
	seen    map[string]bool
	options []FacetOption
}

func newFacetSet() *facetSet {
	return &facetSet{seen: map[string]bool{}, options: []FacetOption{}}
}

func (s *facetSet) add(id, name string) {
	if s.seen[id] {
		return
	}
	s.seen[id] = true
	s.options = append(s.options, FacetOption{ID: id, Name: name})
}

// ExtractContentFacets derives facets from visible items.
// Date facets only list buckets that at least one item falls into.
func ExtractContentFacets(items []domain.ContentItem, now time.Time, t Translate) ContentFacets {
	folders := newFacetSet()
	contentTypes := newFacetSet()
	authors := newFacetSet()
	found := make(map[DateBucket]bool, len(DateBuckets))

	for _, item := range items {
		if item.FolderID != "" {
			name := item.FolderName
			if name == "" {
				name = t(PhraseUnknownContentFolder)
			}
			folders.add(item.FolderID, name)
		}
		contentTypes.add(item.ContentTypeID, item.ContentTypeName)
		authors.add(item.ModifiedUserID, item.ModifiedUserName)

		for _, b := range DateBuckets {
			if !found[b] && b.Contains(item.ModifiedDate, now) {
				found[b] = true
			}
		}
	}

	dates := []FacetOption{}
	for _, b := range DateBuckets {
		if found[b] {
			dates = append(dates, FacetOption{ID: string(b), Name: t(string(b))})
		}
	}

	return ContentFacets{
		Folders:      folders.options,
		ContentTypes: contentTypes.options,
		Authors:      authors.options,
		Dates:        dates,
	}
}

// ExtractAssetFacets derives folder and type facets from items
func ExtractAssetFacets(items []domain.AssetItem, t Translate) AssetFacets {
	folders := newFacetSet()
	types := newFacetSet()

	for _, item := range items {
		if item.AssetFolderID != "" {
			name := item.FolderName
			if name == "" {
				name = t(PhraseUnknownAssetFolder)
			}
			folders.add(item.AssetFolderID, name)
		}
		types.add(item.Type, strings.ToUpper(item.Type))
	}

	return AssetFacets{Folders: folders.options, Types: types.options}
}
