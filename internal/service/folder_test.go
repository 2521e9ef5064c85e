package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFolderService_Delete(t *testing.T) {
	ctx := context.Background()
	folder := &domain.Folder{FolderID: "F1", SpaceID: "S1", Name: "News"}

	t.Run("detach clears folder reference", func(t *testing.T) {
		store := newMockStore()
		svc := NewFolderService(store)

		store.folders.On("Get", ctx, "S1", "F1").Return(folder, nil)
		store.folders.On("Delete", ctx, "S1", "F1").Return(int64(1), nil)
		store.contents.On("DetachFolder", ctx, "S1", "F1").Return(int64(3), nil)

		result, err := svc.Delete(ctx, "S1", "F1", domain.FolderDeleteDetach)
		require.NoError(t, err)
		assert.Equal(t, domain.FolderDeleteDetach, result.Mode)
		assert.Equal(t, int64(3), result.ContentAffected)
		assert.Equal(t, 1, store.txCount)

		store.folders.AssertExpectations(t)
		store.contents.AssertExpectations(t)
		store.contents.AssertNotCalled(t, "DeleteByFolder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cascade deletes content", func(t *testing.T) {
		store := newMockStore()
		svc := NewFolderService(store)

		store.folders.On("Get", ctx, "S1", "F1").Return(folder, nil)
		store.folders.On("Delete", ctx, "S1", "F1").Return(int64(1), nil)
		store.contents.On("DeleteByFolder", ctx, "S1", "F1").Return(int64(2), nil)

		result, err := svc.Delete(ctx, "S1", "F1", domain.FolderDeleteCascade)
		require.NoError(t, err)
		assert.Equal(t, domain.FolderDeleteCascade, result.Mode)
		assert.Equal(t, int64(2), result.ContentAffected)

		store.contents.AssertExpectations(t)
		store.contents.AssertNotCalled(t, "DetachFolder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing folder mutates nothing", func(t *testing.T) {
		store := newMockStore()
		svc := NewFolderService(store)

		store.folders.On("Get", ctx, "S1", "missing").Return(nil, nil)

		_, err := svc.Delete(ctx, "S1", "missing", domain.FolderDeleteCascade)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		store.folders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
		store.contents.AssertNotCalled(t, "DeleteByFolder", mock.Anything, mock.Anything, mock.Anything)
		store.contents.AssertNotCalled(t, "DetachFolder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("folder removed concurrently", func(t *testing.T) {
		store := newMockStore()
		svc := NewFolderService(store)

		store.folders.On("Get", ctx, "S1", "F1").Return(folder, nil)
		store.folders.On("Delete", ctx, "S1", "F1").Return(int64(0), nil)

		_, err := svc.Delete(ctx, "S1", "F1", domain.FolderDeleteDetach)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		store.contents.AssertNotCalled(t, "DetachFolder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("prompt is rejected", func(t *testing.T) {
		store := newMockStore()
		svc := NewFolderService(store)

		_, err := svc.Delete(ctx, "S1", "F1", domain.FolderDeletePrompt)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, 0, store.txCount)
		store.folders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		store := newMockStore()
		svc := NewFolderService(store)

		_, err := svc.Delete(ctx, "S1", "F1", domain.FolderDeleteMode("ARCHIVE"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("content update failure propagates", func(t *testing.T) {
		store := newMockStore()
		svc := NewFolderService(store)
		boom := errors.New("write conflict")

		store.folders.On("Get", ctx, "S1", "F1").Return(folder, nil)
		store.folders.On("Delete", ctx, "S1", "F1").Return(int64(1), nil)
		store.contents.On("DetachFolder", ctx, "S1", "F1").Return(int64(0), boom)

		_, err := svc.Delete(ctx, "S1", "F1", domain.FolderDeleteDetach)
		assert.ErrorIs(t, err, boom)
	})
}

func TestFolderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := newMockStore()
		svc := NewFolderService(store)

		store.contentTypes.On("Get", ctx, "S1", "CT1").Return(&domain.ContentType{ContentTypeID: "CT1"}, nil)
		store.folders.On("Create", ctx, mock.AnythingOfType("*domain.Folder")).Return(nil)

		folder, err := svc.Create(ctx, "S1", domain.FolderCreate{Name: "News", ContentTypes: []string{"CT1"}})
		require.NoError(t, err)
		assert.NotEmpty(t, folder.FolderID)
		assert.Equal(t, "S1", folder.SpaceID)
		assert.Equal(t, []string{"CT1"}, folder.ContentTypes)
	})

	t.Run("no allow-list means all types", func(t *testing.T) {
		store := newMockStore()
		svc := NewFolderService(store)

		store.folders.On("Create", ctx, mock.AnythingOfType("*domain.Folder")).Return(nil)

		folder, err := svc.Create(ctx, "S1", domain.FolderCreate{Name: "Misc"})
		require.NoError(t, err)
		assert.NotNil(t, folder.ContentTypes)
		assert.Empty(t, folder.ContentTypes)
	})

	t.Run("unknown content type", func(t *testing.T) {
		store := newMockStore()
		svc := NewFolderService(store)

		store.contentTypes.On("Get", ctx, "S1", "nope").Return(nil, nil)

		_, err := svc.Create(ctx, "S1", domain.FolderCreate{Name: "News", ContentTypes: []string{"nope"}})
		assert.ErrorIs(t, err, domain.ErrValidation)
		store.folders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
