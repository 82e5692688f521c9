package repository

import (
	"context"
	"encoding/json"

	"skillconnect/internal/cache"
	"skillconnect/internal/kv"
	"skillconnect/internal/middleware"
	"skillconnect/internal/models"
)

// PostRepository defines the interface for post data operations.
// List serves reads through the feed cache; mutations always read the store
// directly so a stale cache can never feed a read-modify-write cycle.
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Insert(ctx context.Context, post models.Post) error
	Update(ctx context.Context, post models.Post) error
	Remove(ctx context.Context, id int64) error
}

// postRepository implements PostRepository
type postRepository struct {
	store *kv.Store
}

// NewPostRepository creates a new post repository over the given store.
func NewPostRepository(store *kv.Store) PostRepository {
	return &postRepository{store: store}
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := cache.CacheAside(ctx, cache.FeedPostsKey, &posts, cache.FeedPostsTTL, func() error {
		loaded, loadErr := r.loadAll(ctx)
		if loadErr != nil {
			return loadErr
		}
		posts = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	posts, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, models.NewNotFoundError("Post", id)
}

func (r *postRepository) Insert(ctx context.Context, post models.Post) error {
	posts, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	posts = append(posts, post)
	return r.saveAll(ctx, posts)
}

// Update replaces the stored post carrying the same ID.
func (r *postRepository) Update(ctx context.Context, post models.Post) error {
	posts, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			return r.saveAll(ctx, posts)
		}
	}
	return models.NewNotFoundError("Post", post.ID)
}

// Remove deletes exactly the post with the given id, leaving the order of
// the remaining posts unchanged.
func (r *postRepository) Remove(ctx context.Context, id int64) error {
	posts, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	kept := posts[:0]
	found := false
	for _, p := range posts {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return models.NewNotFoundError("Post", id)
	}
	return r.saveAll(ctx, kept)
}

// loadAll reads the post record straight from the store, bypassing the cache.
func (r *postRepository) loadAll(ctx context.Context) ([]models.Post, error) {
	raw, ok, err := r.store.Get(ctx, kv.PostsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Post{}, nil
	}

	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		middleware.Logger.WarnContext(ctx, "ignoring malformed post record", "error", err)
		return []models.Post{}, nil
	}
	return posts, nil
}

func (r *postRepository) saveAll(ctx context.Context, posts []models.Post) error {
	encoded, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, kv.PostsKey, string(encoded)); err != nil {
		return err
	}
	cache.InvalidateFeed(ctx)
	return nil
}
