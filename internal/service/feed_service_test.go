package service

import (
	"context"
	"testing"

	"skillconnect/internal/feed"
	"skillconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedFixtureRepos() (*stubPostRepo, *stubUserRepo) {
	posts := []models.Post{
		{ID: 100, Username: "alice", Caption: "first logo"},
		{ID: 200, Username: "bob", Caption: "guitar riff"},
		{ID: 300, Username: "alice", Caption: "second logo"},
	}
	users := []models.User{
		{Username: "alice", Name: "Alice", Category: "Design"},
		{Username: "bob", Name: "Bob", Category: "Music"},
	}
	return &stubPostRepo{
			ListFn: func(context.Context) ([]models.Post, error) { return posts, nil },
		}, &stubUserRepo{
			ListFn: func(context.Context) ([]models.User, error) { return users, nil },
		}
}

func TestFeedService_Feed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	postRepo, userRepo := feedFixtureRepos()
	svc := NewFeedService(postRepo, userRepo)

	t.Run("newest first across all users", func(t *testing.T) {
		views, err := svc.Feed(ctx, feed.Query{Category: feed.CategoryAll}, "")
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, int64(300), views[0].ID)
		assert.Equal(t, int64(100), views[2].ID)
	})

	t.Run("category filter follows the live owner", func(t *testing.T) {
		views, err := svc.Feed(ctx, feed.Query{Category: "Music"}, "")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Bob", views[0].OwnerName)
	})

	t.Run("viewer ownership marks IsMine", func(t *testing.T) {
		views, err := svc.Feed(ctx, feed.Query{Category: feed.CategoryAll}, "alice")
		require.NoError(t, err)
		assert.True(t, views[0].IsMine)
		assert.False(t, views[1].IsMine)
	})
}

func TestFeedService_UserFeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	postRepo, userRepo := feedFixtureRepos()
	svc := NewFeedService(postRepo, userRepo)

	views, err := svc.UserFeed(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(300), views[0].ID)
	assert.Equal(t, int64(100), views[1].ID)
	for _, v := range views {
		assert.True(t, v.IsMine)
	}
}
