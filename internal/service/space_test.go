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

func TestSpaceService_Create(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := NewSpaceService(store, nil)

	store.spaces.On("Create", ctx, mock.AnythingOfType("*domain.Space")).Return(nil)
	store.spaces.On("AddMember", ctx, mock.MatchedBy(func(m *domain.SpaceMember) bool {
		return m.UserID == "u1" && m.Role == domain.RoleOwner
	})).Return(nil)

	space, err := svc.Create(ctx, domain.User{ID: "u1"}, domain.SpaceCreate{Name: "Marketing"})
	require.NoError(t, err)
	assert.Equal(t, "Marketing", space.Name)
	assert.NotEmpty(t, space.SpaceID)
	assert.Equal(t, 1, store.txCount)
	store.spaces.AssertExpectations(t)
}

func TestSpaceService_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("member without cache", func(t *testing.T) {
		store := newMockStore()
		store.spaces.On("GetMember", ctx, "S1", "u1").Return(&domain.SpaceMember{Role: domain.RoleMember}, nil)

		role, err := NewSpaceService(store, nil).Authorize(ctx, "S1", "u1", domain.RoleAny)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleMember, role)
	})

	t.Run("not a member", func(t *testing.T) {
		store := newMockStore()
		store.spaces.On("GetMember", ctx, "S1", "u9").Return(nil, nil)

		_, err := NewSpaceService(store, nil).Authorize(ctx, "S1", "u9", domain.RoleAny)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("insufficient role", func(t *testing.T) {
		store := newMockStore()
		store.spaces.On("GetMember", ctx, "S1", "u1").Return(&domain.SpaceMember{Role: domain.RoleMember}, nil)

		_, err := NewSpaceService(store, nil).Authorize(ctx, "S1", "u1", domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		store := newMockStore()
		cache := new(MockRoleCache)
		cache.On("Get", ctx, "S1", "u1").Return(domain.RoleAdmin, true, nil)

		role, err := NewSpaceService(store, cache).Authorize(ctx, "S1", "u1", domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, role)
		store.spaces.AssertNotCalled(t, "GetMember", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		store := newMockStore()
		cache := new(MockRoleCache)
		cache.On("Get", ctx, "S1", "u1").Return("", false, nil)
		cache.On("Set", ctx, "S1", "u1", domain.RoleOwner).Return(nil)
		store.spaces.On("GetMember", ctx, "S1", "u1").Return(&domain.SpaceMember{Role: domain.RoleOwner}, nil)

		_, err := NewSpaceService(store, cache).Authorize(ctx, "S1", "u1", domain.RoleOwner)
		require.NoError(t, err)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure falls back to the store", func(t *testing.T) {
		store := newMockStore()
		cache := new(MockRoleCache)
		cache.On("Get", ctx, "S1", "u1").Return("", false, errors.New("connection refused"))
		cache.On("Set", ctx, "S1", "u1", domain.RoleMember).Return(errors.New("connection refused"))
		store.spaces.On("GetMember", ctx, "S1", "u1").Return(&domain.SpaceMember{Role: domain.RoleMember}, nil)

		role, err := NewSpaceService(store, cache).Authorize(ctx, "S1", "u1", domain.RoleMember)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleMember, role)
	})
}
