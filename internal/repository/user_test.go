package repository

import (
	"context"
	"testing"

	"skillconnect/internal/kv"
	"skillconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *kv.Store {
	t.Helper()
	store, err := kv.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestUserRepository_EmptyStore(t *testing.T) {
	t.Parallel()
	repo := NewUserRepository(newTestStore(t))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_MalformedRecordDegrades(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, kv.UsersKey, "{not json"))

	repo := NewUserRepository(store)
	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_InsertAndLookup(t *testing.T) {
	t.Parallel()
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, models.User{Name: "Alice Smith", Username: "alice", Category: "Design"}))
	require.NoError(t, repo.Insert(ctx, models.User{Name: "Bob Jones", Username: "bob", Category: "Music"}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)

	alice, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, alice)
	assert.Equal(t, "Alice Smith", alice.Name)
}

func TestUserRepository_GetByUsernameIsExact(t *testing.T) {
	t.Parallel()
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, models.User{Name: "Alice", Username: "alice"}))

	found, err := repo.GetByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestUserRepository_ExistsFold(t *testing.T) {
	t.Parallel()
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, models.User{Name: "Alice", Username: "alice"}))

	for _, candidate := range []string{"alice", "Alice", "ALICE"} {
		exists, err := repo.ExistsFold(ctx, candidate)
		require.NoError(t, err)
		assert.True(t, exists, candidate)
	}

	exists, err := repo.ExistsFold(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)
}
