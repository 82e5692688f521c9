package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"skillconnect/internal/kv"
	"skillconnect/internal/render"
	"skillconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSeedStore(t *testing.T) *kv.Store {
	t.Helper()
	store, err := kv.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRun_GeneratesUsersAndPosts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newSeedStore(t)

	require.NoError(t, Run(ctx, store, Options{NumUsers: 5, NumPosts: 12, Password: "demo"}))

	users, err := repository.NewUserRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)

	validCategories := make(map[string]bool, len(render.Categories))
	for _, c := range render.Categories {
		validCategories[c] = true
	}
	for _, u := range users {
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Username)
		assert.True(t, validCategories[u.Category], "unknown category %q", u.Category)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("demo")))
	}

	posts, err := repository.NewPostRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 12)

	owners := make(map[string]bool, len(users))
	for _, u := range users {
		owners[u.Username] = true
	}
	var prevID int64
	for _, p := range posts {
		assert.True(t, owners[p.Username], "post owner %q was not seeded", p.Username)
		assert.NotEmpty(t, p.Caption)
		assert.Equal(t, demoImage, p.Image)
		assert.Greater(t, p.ID, prevID, "ids must stay append-ordered")
		prevID = p.ID
	}
}

func TestRun_PostsRequireUsers(t *testing.T) {
	t.Parallel()
	store := newSeedStore(t)
	err := Run(context.Background(), store, Options{NumPosts: 3})
	assert.Error(t, err)
}

func TestRun_AppliesFixture(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newSeedStore(t)

	path := filepath.Join(t.TempDir(), "fixture.yml")
	fixture := `users:
  - name: Alice
    username: alice
    password: pw1
    category: Design
    bio: I draw logos.
posts:
  - username: alice
    caption: my new logo
    likes: 2
    comments:
      - user: bob
        text: nice work
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	require.NoError(t, Run(ctx, store, Options{FixturePath: path}))

	user, err := repository.NewUserRepository(store).GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Design", user.Category)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw1")))

	posts, err := repository.NewPostRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "my new logo", posts[0].Caption)
	assert.Equal(t, "Alice", posts[0].Name, "fixture posts denormalize their owner")
	assert.Equal(t, 2, posts[0].Likes)
	require.Len(t, posts[0].Comments, 1)
	assert.Equal(t, "nice work", posts[0].Comments[0].Text)
}

func TestLoadFixture_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadFixture(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
