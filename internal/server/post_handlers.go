package server

import (
	"strconv"

	"skillconnect/internal/models"
	"skillconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

func postID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, models.NewValidationError("Invalid post id")
	}
	return id, nil
}

// CreatePost handles POST /posts: multipart caption + image file. The file
// is converted to a data URL server-side before the post is stored.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	username := s.currentUsername(c)
	if username == "" {
		return redirectWith(c, "/login", "error", "Please login")
	}

	caption := c.FormValue("caption")

	file, err := c.FormFile("image")
	if err != nil || file.Size == 0 {
		return redirectWith(c, "/profile", "error", "Add a caption and image")
	}
	f, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	defer f.Close()

	image, err := service.EncodeImageDataURL(f, s.config.MaxUploadSize)
	if err != nil {
		return redirectWith(c, "/profile", "error", userMessage(err))
	}

	if _, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		Username: username,
		Caption:  caption,
		Image:    image,
	}); err != nil {
		return redirectWith(c, "/profile", "error", userMessage(err))
	}

	return redirectWith(c, "/profile", "notice", "Post uploaded!")
}

// LikePost handles POST /posts/:id/like.
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	if _, err := s.postService.LikePost(s.requestContext(c), id); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return redirectBack(c, "/")
}

// PostComment handles POST /posts/:id/comments. Anonymous viewers comment
// as Guest.
func (s *Server) PostComment(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	user := s.currentUsername(c)
	if _, err := s.postService.AddComment(s.requestContext(c), id, user, c.FormValue("text")); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return redirectBack(c, "/")
}

// DeletePost handles POST /posts/:id/delete. Ownership is enforced in the
// service, not just hidden in the rendered controls.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	username := s.currentUsername(c)
	if err := s.postService.DeletePost(s.requestContext(c), id, username); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return redirectBack(c, "/")
}

// SharePost handles GET /posts/:id/share, returning the canonical post URL.
// The clipboard write happens client-side; failure there is not this
// handler's concern.
func (s *Server) SharePost(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(fiber.Map{"url": s.postService.ShareLink(id)})
}
