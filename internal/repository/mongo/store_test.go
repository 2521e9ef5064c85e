package mongo

import (
	"context"
	"testing"

	"github.com/Rrens/content-portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFolderRepository_Get(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("found", func(mt *mtest.T) {
		repo := &FolderRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.folder", mtest.FirstBatch, bson.D{
			{Key: "folderId", Value: "F1"},
			{Key: "spaceId", Value: "S1"},
			{Key: "name", Value: "News"},
			{Key: "contentTypes", Value: bson.A{"article"}},
		}))

		folder, err := repo.Get(ctx, "S1", "F1")
		require.NoError(t, err)
		require.NotNil(t, folder)
		assert.Equal(t, "News", folder.Name)
		assert.Equal(t, []string{"article"}, folder.ContentTypes)
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := &FolderRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.folder", mtest.FirstBatch))

		folder, err := repo.Get(ctx, "S1", "FX")
		require.NoError(t, err)
		assert.Nil(t, folder)
	})
}

func TestFolderRepository_CreateDuplicate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate", func(mt *mtest.T) {
		repo := &FolderRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Create(context.Background(), &domain.Folder{FolderID: "F1", SpaceID: "S1"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestContentRepository_FolderMutations(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("detach", func(mt *mtest.T) {
		repo := &ContentRepository{coll: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 2}, {Key: "nModified", Value: 2}})

		n, err := repo.DetachFolder(ctx, "S1", "F1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	mt.Run("cascade", func(mt *mtest.T) {
		repo := &ContentRepository{coll: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 3}})

		n, err := repo.DeleteByFolder(ctx, "S1", "F1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := &ContentRepository{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.content", mtest.FirstBatch,
			bson.D{{Key: "contentId", Value: "C1"}, {Key: "spaceId", Value: "S1"}, {Key: "folderId", Value: "F1"}, {Key: "status", Value: "draft"}},
			bson.D{{Key: "contentId", Value: "C2"}, {Key: "spaceId", Value: "S1"}, {Key: "status", Value: "published"}},
		))

		contents, err := repo.ListBySpace(ctx, "S1")
		require.NoError(t, err)
		require.Len(t, contents, 2)
		assert.Equal(t, "F1", contents[0].FolderID)
		assert.Equal(t, "", contents[1].FolderID)
		assert.Equal(t, domain.ContentStatusPublished, contents[1].Status)
	})
}

func TestSpaceRepository_ListByUserWithoutMemberships(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty", func(mt *mtest.T) {
		repo := &SpaceRepository{spaces: mt.Coll, members: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.spaceuser", mtest.FirstBatch))

		spaces, err := repo.ListByUser(context.Background(), "u1")
		require.NoError(t, err)
		assert.Empty(t, spaces)
	})
}
