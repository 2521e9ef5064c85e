package listing

import (
	"fmt"

	"github.com/Rrens/content-portal/internal/domain"
)

// ParseAssetStatus parses an asset status filter. Empty input means no constraint.
func ParseAssetStatus(s string) (domain.AssetStatus, error) {
	switch st := domain.AssetStatus(s); st {
	case "", domain.AssetStatusEnabled, domain.AssetStatusDisabled:
		return st, nil
	}
	return "", fmt.Errorf("unknown status filter %q", s)
}

// AssetFilter holds the active asset listing constraints
type AssetFilter struct {
	FolderID string
	Type     string
	Status   domain.AssetStatus
	Search   string
}

// Match reports whether item passes every active constraint
func (f AssetFilter) Match(item *domain.AssetItem) bool {
	if f.FolderID != "" && item.AssetFolderID != f.FolderID {
		return false
	}
	if f.Type != "" && item.Type != f.Type {
		return false
	}
	if f.Status != "" && item.Status != f.Status {
		return false
	}
	if f.Search != "" {
		return matchesSearch(f.Search, item.Name, item.ModifiedUserName, item.FolderName)
	}
	return true
}

// FilterAssets applies f to items
func FilterAssets(items []domain.AssetItem, f AssetFilter) []domain.AssetItem {
	out := make([]domain.AssetItem, 0, len(items))
	for i := range items {
		if f.Match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
