package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillconnect/internal/models"
	"skillconnect/internal/repository"
	"skillconnect/internal/session"
	"skillconnect/internal/validation"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	baseURL  string
	now      func() time.Time
}

type CreatePostInput struct {
	// Username is the session user uploading the post.
	Username string
	Caption  string
	// Image is the already-encoded data URL of the uploaded picture.
	Image string
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, baseURL string) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

// CreatePost appends a new post. The post ID is the creation timestamp in
// Unix milliseconds; the owner's name, photo and category are denormalized
// onto the post at this moment and never synced afterwards.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Username == "" {
		return nil, models.NewUnauthorizedError("Please login")
	}

	caption := strings.TrimSpace(in.Caption)
	if caption == "" || in.Image == "" {
		return nil, models.NewValidationError("Add a caption and image")
	}
	if err := validation.ValidateCaption(caption); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	owner, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, models.NewUnauthorizedError("User not found")
	}

	post := models.Post{
		ID:        s.now().UnixMilli(),
		Username:  owner.Username,
		Name:      owner.Name,
		UserPhoto: owner.Photo,
		Category:  owner.Category,
		Caption:   caption,
		Image:     in.Image,
		Likes:     0,
		Comments:  []models.Comment{},
	}
	if err := s.postRepo.Insert(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

// LikePost increments the like counter. There is no per-user de-duplication;
// the counter only ever grows.
func (s *PostService) LikePost(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Likes++
	if err := s.postRepo.Update(ctx, *post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post. Only the owning username may delete it; the
// check is enforced here, not just hidden in the rendered controls.
func (s *PostService) DeletePost(ctx context.Context, id int64, username string) error {
	if username == "" {
		return models.NewUnauthorizedError("Please login")
	}
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.Username != username {
		return models.NewUnauthorizedError("Only the post owner can delete it")
	}
	return s.postRepo.Remove(ctx, id)
}

// AddComment appends a comment. An empty user means no session and falls
// back to the Guest display name; anonymous comments are allowed.
func (s *PostService) AddComment(ctx context.Context, id int64, user, text string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if err := validation.ValidateComment(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if user == "" {
		user = session.Guest
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Comments = append(post.Comments, models.Comment{User: user, Text: text})
	if err := s.postRepo.Update(ctx, *post); err != nil {
		return nil, err
	}
	return post, nil
}

// ShareLink returns the canonical URL referencing a post. Copying it to the
// clipboard is the client's concern.
func (s *PostService) ShareLink(id int64) string {
	return fmt.Sprintf("%s/#post-%d", s.baseURL, id)
}
