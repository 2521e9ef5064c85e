// Package repository defines the storage contracts shared by the store
// backends. Lookups return (nil, nil) when a record does not exist.
package repository

import (
	"context"

	"github.com/Rrens/content-portal/internal/domain"
)

// SpaceRepository handles spaces and their members
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) error
	Get(ctx context.Context, spaceID string) (*domain.Space, error)
	ListByUser(ctx context.Context, userID string) ([]domain.SpaceWithRole, error)
	AddMember(ctx context.Context, member *domain.SpaceMember) error
	GetMember(ctx context.Context, spaceID, userID string) (*domain.SpaceMember, error)
}

// FolderRepository handles content folders
type FolderRepository interface {
	Create(ctx context.Context, folder *domain.Folder) error
	Get(ctx context.Context, spaceID, folderID string) (*domain.Folder, error)
	ListBySpace(ctx context.Context, spaceID string) ([]domain.Folder, error)
	Delete(ctx context.Context, spaceID, folderID string) (int64, error)
}

// ContentRepository handles content items
type ContentRepository interface {
	Create(ctx context.Context, content *domain.Content) error
	ListBySpace(ctx context.Context, spaceID string) ([]domain.Content, error)
	// DeleteByFolder removes every item of the space that references folderID
	DeleteByFolder(ctx context.Context, spaceID, folderID string) (int64, error)
	// DetachFolder clears the folder reference on every item of the space
	// that references folderID
	DetachFolder(ctx context.Context, spaceID, folderID string) (int64, error)
}

// ContentTypeRepository handles content types
type ContentTypeRepository interface {
	Create(ctx context.Context, contentType *domain.ContentType) error
	Get(ctx context.Context, spaceID, contentTypeID string) (*domain.ContentType, error)
	ListBySpace(ctx context.Context, spaceID string) ([]domain.ContentType, error)
}

// AssetRepository handles uploaded assets
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	ListBySpace(ctx context.Context, spaceID string) ([]domain.Asset, error)
}

// AssetFolderRepository handles asset folders
type AssetFolderRepository interface {
	Create(ctx context.Context, folder *domain.AssetFolder) error
	Get(ctx context.Context, spaceID, assetFolderID string) (*domain.AssetFolder, error)
	ListBySpace(ctx context.Context, spaceID string) ([]domain.AssetFolder, error)
}

// TxFn runs inside a transaction; repositories must be called with the ctx it receives
type TxFn func(ctx context.Context) error

// Store bundles the repositories of one backend
type Store interface {
	Spaces() SpaceRepository
	Folders() FolderRepository
	Contents() ContentRepository
	ContentTypes() ContentTypeRepository
	Assets() AssetRepository
	AssetFolders() AssetFolderRepository

	// WithinTransaction runs fn atomically when the backend supports it.
	// Backends without transaction support run fn directly.
	WithinTransaction(ctx context.Context, fn TxFn) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
