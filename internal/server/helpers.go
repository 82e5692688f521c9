package server

import (
	"bytes"
	"context"
	"errors"
	"net/url"

	"skillconnect/internal/middleware"
	"skillconnect/internal/models"
	"skillconnect/internal/render"

	"github.com/gofiber/fiber/v2"
)

// requestContext returns the request context with the session username
// attached for the context-aware logger.
func (s *Server) requestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if username, ok := s.sessions.Current(ctx); ok {
		ctx = context.WithValue(ctx, middleware.UsernameKey, username)
	}
	return ctx
}

// currentUsername resolves the session, returning "" for anonymous viewers.
func (s *Server) currentUsername(c *fiber.Ctx) string {
	username, ok := s.sessions.Current(c.UserContext())
	if !ok {
		return ""
	}
	return username
}

// renderPage executes a full page template into the response.
func (s *Server) renderPage(c *fiber.Ctx, status int, name string, data render.PageData) error {
	data.CurrentUser = s.currentUsername(c)
	data.LoggedIn = data.CurrentUser != ""
	if data.Notice == "" {
		data.Notice = c.Query("notice")
	}
	if data.Error == "" {
		data.Error = c.Query("error")
	}
	if data.Form == nil {
		data.Form = map[string]string{}
	}

	var buf bytes.Buffer
	if err := render.Page(&buf, name, data); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

// redirectBack sends the browser back where the action came from so the page
// fully re-renders with fresh store state.
func redirectBack(c *fiber.Ctx, fallback string) error {
	target := c.Get("Referer")
	if target == "" {
		target = fallback
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

// redirectWith redirects to path carrying a flash message as a query param.
func redirectWith(c *fiber.Ctx, path, param, message string) error {
	return c.Redirect(path+"?"+param+"="+url.QueryEscape(message), fiber.StatusSeeOther)
}

// statusForError maps application error codes onto HTTP statuses.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			return fiber.StatusBadRequest
		case "UNAUTHORIZED":
			return fiber.StatusUnauthorized
		case "NOT_FOUND":
			return fiber.StatusNotFound
		}
	}
	return fiber.StatusInternalServerError
}

// userMessage extracts the displayable message from an application error.
func userMessage(err error) string {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong"
}
