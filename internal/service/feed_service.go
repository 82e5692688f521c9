package service

import (
	"context"

	"skillconnect/internal/feed"
	"skillconnect/internal/render"
	"skillconnect/internal/repository"
)

// FeedService derives view state from store state. It owns no state of its
// own; every call re-reads the store (through the feed cache) so any mutation
// is visible on the next render.
type FeedService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewFeedService(postRepo repository.PostRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{postRepo: postRepo, userRepo: userRepo}
}

// Feed returns the rendered view of the global feed for the given query.
// current is the session username, empty for anonymous viewers.
func (s *FeedService) Feed(ctx context.Context, q feed.Query, current string) ([]render.PostView, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return render.BuildViews(feed.Apply(posts, users, q), users, current), nil
}

// UserFeed returns the newest-first view of a single user's posts, as shown
// on the profile page.
func (s *FeedService) UserFeed(ctx context.Context, username string) ([]render.PostView, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	own := posts[:0:0]
	for _, p := range posts {
		if p.Username == username {
			own = append(own, p)
		}
	}
	return render.BuildViews(feed.Apply(own, users, feed.Query{}), users, username), nil
}
