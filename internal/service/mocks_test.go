package service

import (
	"context"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockStore hands out the mock repositories and runs transactions inline
type MockStore struct {
	spaces       *MockSpaceRepository
	folders      *MockFolderRepository
	contents     *MockContentRepository
	contentTypes *MockContentTypeRepository
	assets       *MockAssetRepository
	assetFolders *MockAssetFolderRepository
	txCount      int
}

func newMockStore() *MockStore {
	return &MockStore{
		spaces:       new(MockSpaceRepository),
		folders:      new(MockFolderRepository),
		contents:     new(MockContentRepository),
		contentTypes: new(MockContentTypeRepository),
		assets:       new(MockAssetRepository),
		assetFolders: new(MockAssetFolderRepository),
	}
}

func (s *MockStore) Spaces() repository.SpaceRepository             { return s.spaces }
func (s *MockStore) Folders() repository.FolderRepository           { return s.folders }
func (s *MockStore) Contents() repository.ContentRepository         { return s.contents }
func (s *MockStore) ContentTypes() repository.ContentTypeRepository { return s.contentTypes }
func (s *MockStore) Assets() repository.AssetRepository             { return s.assets }
func (s *MockStore) AssetFolders() repository.AssetFolderRepository { return s.assetFolders }

func (s *MockStore) WithinTransaction(ctx context.Context, fn repository.TxFn) error {
	s.txCount++
	return fn(ctx)
}

func (s *MockStore) Ping(ctx context.Context) error  { return nil }
func (s *MockStore) Close(ctx context.Context) error { return nil }

// MockSpaceRepository mocks the SpaceRepository interface
type MockSpaceRepository struct {
	mock.Mock
}

func (m *MockSpaceRepository) Create(ctx context.Context, space *domain.Space) error {
	args := m.Called(ctx, space)
	return args.Error(0)
}

func (m *MockSpaceRepository) Get(ctx context.Context, spaceID string) (*domain.Space, error) {
	args := m.Called(ctx, spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Space), args.Error(1)
}

func (m *MockSpaceRepository) ListByUser(ctx context.Context, userID string) ([]domain.SpaceWithRole, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.SpaceWithRole), args.Error(1)
}

func (m *MockSpaceRepository) AddMember(ctx context.Context, member *domain.SpaceMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockSpaceRepository) GetMember(ctx context.Context, spaceID, userID string) (*domain.SpaceMember, error) {
	args := m.Called(ctx, spaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpaceMember), args.Error(1)
}

// MockFolderRepository mocks the FolderRepository interface
type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) Create(ctx context.Context, folder *domain.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) Get(ctx context.Context, spaceID, folderID string) (*domain.Folder, error) {
	args := m.Called(ctx, spaceID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.Folder, error) {
	args := m.Called(ctx, spaceID)
	return args.Get(0).([]domain.Folder), args.Error(1)
}

func (m *MockFolderRepository) Delete(ctx context.Context, spaceID, folderID string) (int64, error) {
	args := m.Called(ctx, spaceID, folderID)
	return args.Get(0).(int64), args.Error(1)
}

// MockContentRepository mocks the ContentRepository interface
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(ctx context.Context, content *domain.Content) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockContentRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.Content, error) {
	args := m.Called(ctx, spaceID)
	return args.Get(0).([]domain.Content), args.Error(1)
}

func (m *MockContentRepository) DeleteByFolder(ctx context.Context, spaceID, folderID string) (int64, error) {
	args := m.Called(ctx, spaceID, folderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentRepository) DetachFolder(ctx context.Context, spaceID, folderID string) (int64, error) {
	args := m.Called(ctx, spaceID, folderID)
	return args.Get(0).(int64), args.Error(1)
}

// MockContentTypeRepository mocks the ContentTypeRepository interface
type MockContentTypeRepository struct {
	mock.Mock
}

func (m *MockContentTypeRepository) Create(ctx context.Context, ct *domain.ContentType) error {
	args := m.Called(ctx, ct)
	return args.Error(0)
}

func (m *MockContentTypeRepository) Get(ctx context.Context, spaceID, contentTypeID string) (*domain.ContentType, error) {
	args := m.Called(ctx, spaceID, contentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentType), args.Error(1)
}

func (m *MockContentTypeRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.ContentType, error) {
	args := m.Called(ctx, spaceID)
	return args.Get(0).([]domain.ContentType), args.Error(1)
}

// MockAssetRepository mocks the AssetRepository interface
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.Asset, error) {
	args := m.Called(ctx, spaceID)
	return args.Get(0).([]domain.Asset), args.Error(1)
}

// MockAssetFolderRepository mocks the AssetFolderRepository interface
type MockAssetFolderRepository struct {
	mock.Mock
}

func (m *MockAssetFolderRepository) Create(ctx context.Context, folder *domain.AssetFolder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockAssetFolderRepository) Get(ctx context.Context, spaceID, assetFolderID string) (*domain.AssetFolder, error) {
	args := m.Called(ctx, spaceID, assetFolderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetFolder), args.Error(1)
}

func (m *MockAssetFolderRepository) ListBySpace(ctx context.Context, spaceID string) ([]domain.AssetFolder, error) {
	args := m.Called(ctx, spaceID)
	return args.Get(0).([]domain.AssetFolder), args.Error(1)
}

// MockRoleCache mocks the RoleCache interface
type MockRoleCache struct {
	mock.Mock
}

func (m *MockRoleCache) Get(ctx context.Context, spaceID, userID string) (string, bool, error) {
	args := m.Called(ctx, spaceID, userID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockRoleCache) Set(ctx context.Context, spaceID, userID, role string) error {
	args := m.Called(ctx, spaceID, userID, role)
	return args.Error(0)
}

func (m *MockRoleCache) Invalidate(ctx context.Context, spaceID, userID string) error {
	args := m.Called(ctx, spaceID, userID)
	return args.Error(0)
}
