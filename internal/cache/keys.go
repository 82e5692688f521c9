package cache

import (
	"context"
	"time"
)

const (
	// FeedPostsKey caches the decoded post list served to feed reads.
	// Mutations write the store directly and invalidate this key, so a short
	// TTL only bounds staleness from writers outside this process.
	FeedPostsKey = "feed:posts"

	FeedPostsTTL = 30 * time.Second
)

// Invalidate removes a key, tolerating a missing client.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateFeed drops the cached post list after any post mutation.
func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedPostsKey)
}
