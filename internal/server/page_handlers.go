package server

import (
	"bytes"
	"html/template"

	"skillconnect/internal/feed"
	"skillconnect/internal/models"
	"skillconnect/internal/render"

	"github.com/gofiber/fiber/v2"
)

// Home handles GET /: the global feed with search and category filtering.
func (s *Server) Home(c *fiber.Ctx) error {
	ctx := s.requestContext(c)
	q := feed.Query{
		Search:   c.Query("search"),
		Category: c.Query("category", feed.CategoryAll),
	}

	views, err := s.feedService.Feed(ctx, q, s.currentUsername(c))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return s.renderPage(c, fiber.StatusOK, "home.html", render.PageData{
		Title:    "Home",
		Search:   q.Search,
		Category: q.Category,
		Posts:    views,
	})
}

// FeedFragment handles GET /feed: just the rendered post cards, for callers
// that re-fetch the feed after an action.
func (s *Server) FeedFragment(c *fiber.Ctx) error {
	ctx := s.requestContext(c)
	q := feed.Query{
		Search:   c.Query("search"),
		Category: c.Query("category", feed.CategoryAll),
	}

	views, err := s.feedService.Feed(ctx, q, s.currentUsername(c))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	var buf bytes.Buffer
	if err := render.Feed(&buf, views); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// Profile handles GET /profile: the session user's sidebar, upload form and
// own posts. A missing session or a dangling session user forces logout and
// redirects to the login page.
func (s *Server) Profile(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	user, err := s.authService.CurrentUser(ctx)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	if user == nil {
		return redirectWith(c, "/login", "error", "Please login")
	}

	views, err := s.feedService.UserFeed(ctx, user.Username)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	photo := user.Photo
	if photo == "" {
		photo = render.PlaceholderProfile
	}

	return s.renderPage(c, fiber.StatusOK, "profile.html", render.PageData{
		Title: user.Name,
		Posts: views,
		Profile: &render.ProfileView{
			Name:     user.Name,
			Category: user.Category,
			Bio:      user.Bio,
			Photo:    template.URL(photo),
		},
	})
}
