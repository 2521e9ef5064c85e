package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/listing"
	"github.com/Rrens/content-portal/internal/repository"
	"github.com/Rrens/content-portal/internal/security"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AssetListing is the asset page of a space
type AssetListing struct {
	Items  []domain.AssetItem  `json:"items"`
	Facets listing.AssetFacets `json:"facets"`
}

// AssetUpload describes an incoming file
type AssetUpload struct {
	Name          string
	Size          int64
	AssetFolderID string
	Body          io.Reader
}

// AssetService handles assets and asset folders
type AssetService struct {
	store     repository.Store
	uploadDir string
	validator *security.UploadValidator
}

// NewAssetService creates a new asset service storing files under uploadDir
func NewAssetService(store repository.Store, uploadDir string, validator *security.UploadValidator) *AssetService {
	return &AssetService{store: store, uploadDir: uploadDir, validator: validator}
}

// List loads the assets of a space and applies f. Facets cover every asset.
func (s *AssetService) List(ctx context.Context, spaceID string, f listing.AssetFilter, t listing.Translate) (*AssetListing, error) {
	folders, err := s.store.AssetFolders().ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset folders: %w", err)
	}

	assets, err := s.store.Assets().ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	folderNames := make(map[string]string, len(folders))
	for _, folder := range folders {
		folderNames[folder.AssetFolderID] = folder.Name
	}

	items := make([]domain.AssetItem, 0, len(assets))
	for _, a := range assets {
		item := domain.AssetItem{Asset: a}
		if a.AssetFolderID != "" {
			item.FolderName = folderNames[a.AssetFolderID]
		}
		items = append(items, item)
	}

	return &AssetListing{
		Items:  listing.FilterAssets(items, f),
		Facets: listing.ExtractAssetFacets(items, t),
	}, nil
}

// Upload stores a file under the space's upload directory and records it
func (s *AssetService) Upload(ctx context.Context, spaceID string, user domain.User, in AssetUpload) (*domain.Asset, error) {
	if err := s.validator.Validate(in.Name, in.Size); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	if in.AssetFolderID != "" {
		folder, err := s.store.AssetFolders().Get(ctx, spaceID, in.AssetFolderID)
		if err != nil {
			return nil, fmt.Errorf("failed to get asset folder: %w", err)
		}
		if folder == nil {
			return nil, &domain.ValidationError{Message: "unknown asset folder"}
		}
	}

	name := s.validator.SanitizeName(in.Name)
	ext := security.Extension(name)
	assetID := uuid.NewString()

	dir := filepath.Join(s.uploadDir, spaceID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	destPath := filepath.Join(dir, assetID+ext)
	size, err := writeFile(destPath, in.Body)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	asset := &domain.Asset{
		AssetID:          assetID,
		SpaceID:          spaceID,
		AssetFolderID:    in.AssetFolderID,
		Name:             name,
		Type:             strings.TrimPrefix(ext, "."),
		Status:           domain.AssetStatusEnabled,
		Size:             size,
		StoragePath:      destPath,
		ModifiedDate:     now,
		ModifiedUserID:   user.ID,
		ModifiedUserName: user.DisplayName(),
	}

	if err := s.store.Assets().Create(ctx, asset); err != nil {
		if rmErr := os.Remove(destPath); rmErr != nil {
			log.Warn().Err(rmErr).Str("path", destPath).Msg("failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return asset, nil
}

func writeFile(path string, body io.Reader) (int64, error) {
	dst, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to save file: %w", err)
	}

	n, err := io.Copy(dst, body)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("failed to save file: %w", err)
	}

	return n, nil
}

// ListFolders retrieves all asset folders of a space
func (s *AssetService) ListFolders(ctx context.Context, spaceID string) ([]domain.AssetFolder, error) {
	folders, err := s.store.AssetFolders().ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset folders: %w", err)
	}
	return folders, nil
}

// CreateFolder creates an asset folder
func (s *AssetService) CreateFolder(ctx context.Context, spaceID string, input domain.AssetFolderCreate) (*domain.AssetFolder, error) {
	folder := &domain.AssetFolder{
		AssetFolderID: uuid.NewString(),
		SpaceID:       spaceID,
		Name:          input.Name,
		CreatedDate:   time.Now(),
	}

	if err := s.store.AssetFolders().Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("failed to create asset folder: %w", err)
	}

	return folder, nil
}
