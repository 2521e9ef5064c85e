package api

import (
	"context"
	"sort"
	"sync"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/repository"
)

// memStore is an in-memory repository.Store for router tests
type memStore struct {
	mu           sync.Mutex
	spaces       map[string]domain.Space
	members      map[string]domain.SpaceMember
	folders      map[string]domain.Folder
	contents     []domain.Content
	contentTypes []domain.ContentType
	assets       []domain.Asset
	assetFolders []domain.AssetFolder
}

func newMemStore() *memStore {
	return &memStore{
		spaces:  map[string]domain.Space{},
		members: map[string]domain.SpaceMember{},
		folders: map[string]domain.Folder{},
	}
}

func (s *memStore) Spaces() repository.SpaceRepository             { return memSpaces{s} }
func (s *memStore) Folders() repository.FolderRepository           { return memFolders{s} }
func (s *memStore) Contents() repository.ContentRepository         { return memContents{s} }
func (s *memStore) ContentTypes() repository.ContentTypeRepository { return memContentTypes{s} }
func (s *memStore) Assets() repository.AssetRepository             { return memAssets{s} }
func (s *memStore) AssetFolders() repository.AssetFolderRepository { return memAssetFolders{s} }

func (s *memStore) WithinTransaction(ctx context.Context, fn repository.TxFn) error {
	return fn(ctx)
}

func (s *memStore) Ping(ctx context.Context) error  { return nil }
func (s *memStore) Close(ctx context.Context) error { return nil }

func (s *memStore) content(id string) (domain.Content, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contents {
		if c.ContentID == id {
			return c, true
		}
	}
	return domain.Content{}, false
}

type memSpaces struct{ s *memStore }

func (r memSpaces) Create(ctx context.Context, space *domain.Space) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.spaces[space.SpaceID] = *space
	return nil
}

func (r memSpaces) Get(ctx context.Context, spaceID string) (*domain.Space, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if space, ok := r.s.spaces[spaceID]; ok {
		return &space, nil
	}
	return nil, nil
}

func (r memSpaces) ListByUser(ctx context.Context, userID string) ([]domain.SpaceWithRole, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.SpaceWithRole{}
	for _, m := range r.s.members {
		if m.UserID == userID {
			out = append(out, domain.SpaceWithRole{Space: r.s.spaces[m.SpaceID], Role: m.Role})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memSpaces) AddMember(ctx context.Context, member *domain.SpaceMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.members[member.SpaceID+"/"+member.UserID] = *member
	return nil
}

func (r memSpaces) GetMember(ctx context.Context, spaceID, userID string) (*domain.SpaceMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m, ok := r.s.members[spaceID+"/"+userID]; ok {
		return &m, nil
	}
	return nil, nil
}

type memFolders struct{ s *memStore }

func (r memFolders) Create(ctx context.Context, folder *domain.Folder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.folders[folder.SpaceID+"/"+folder.FolderID] = *folder
	return nil
}

func (r memFolders) Get(ctx context.Context, spaceID, folderID string) (*domain.Folder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if f, ok := r.s.folders[spaceID+"/"+folderID]; ok {
		return &f, nil
	}
	return nil, nil
}

func (r memFolders) ListBySpace(ctx context.Context, spaceID string) ([]domain.Folder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Folder{}
	for _, f := range r.s.folders {
		if f.SpaceID == spaceID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memFolders) Delete(ctx context.Context, spaceID, folderID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := spaceID + "/" + folderID
	if _, ok := r.s.folders[key]; !ok {
		return 0, nil
	}
	delete(r.s.folders, key)
	return 1, nil
}

type memContents struct{ s *memStore }

func (r memContents) Create(ctx context.Context, content *domain.Content) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.contents = append(r.s.contents, *content)
	return nil
}

func (r memContents) ListBySpace(ctx context.Context, spaceID string) ([]domain.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Content{}
	for _, c := range r.s.contents {
		if c.SpaceID == spaceID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memContents) DeleteByFolder(ctx context.Context, spaceID, folderID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	kept := r.s.contents[:0]
	for _, c := range r.s.contents {
		if c.SpaceID == spaceID && c.FolderID == folderID {
			n++
			continue
		}
		kept = append(kept, c)
	}
	r.s.contents = kept
	return n, nil
}

func (r memContents) DetachFolder(ctx context.Context, spaceID, folderID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for i := range r.s.contents {
		if r.s.contents[i].SpaceID == spaceID && r.s.contents[i].FolderID == folderID {
			r.s.contents[i].FolderID = ""
			n++
		}
	}
	return n, nil
}

type memContentTypes struct{ s *memStore }

func (r memContentTypes) Create(ctx context.Context, ct *domain.ContentType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.contentTypes = append(r.s.contentTypes, *ct)
	return nil
}

func (r memContentTypes) Get(ctx context.Context, spaceID, contentTypeID string) (*domain.ContentType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ct := range r.s.contentTypes {
		if ct.SpaceID == spaceID && ct.ContentTypeID == contentTypeID {
			return &ct, nil
		}
	}
	return nil, nil
}

func (r memContentTypes) ListBySpace(ctx context.Context, spaceID string) ([]domain.ContentType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.ContentType{}
	for _, ct := range r.s.contentTypes {
		if ct.SpaceID == spaceID {
			out = append(out, ct)
		}
	}
	return out, nil
}

type memAssets struct{ s *memStore }

func (r memAssets) Create(ctx context.Context, asset *domain.Asset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.assets = append(r.s.assets, *asset)
	return nil
}

func (r memAssets) ListBySpace(ctx context.Context, spaceID string) ([]domain.Asset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Asset{}
	for _, a := range r.s.assets {
		if a.SpaceID == spaceID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memAssetFolders struct{ s *memStore }

func (r memAssetFolders) Create(ctx context.Context, folder *domain.AssetFolder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.assetFolders = append(r.s.assetFolders, *folder)
	return nil
}

func (r memAssetFolders) Get(ctx context.Context, spaceID, assetFolderID string) (*domain.AssetFolder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.assetFolders {
		if f.SpaceID == spaceID && f.AssetFolderID == assetFolderID {
			return &f, nil
		}
	}
	return nil, nil
}

func (r memAssetFolders) ListBySpace(ctx context.Context, spaceID string) ([]domain.AssetFolder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.AssetFolder{}
	for _, f := range r.s.assetFolders {
		if f.SpaceID == spaceID {
			out = append(out, f)
		}
	}
	return out, nil
}
