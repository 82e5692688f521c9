package server

import (
	"skillconnect/internal/models"
	"skillconnect/internal/render"
	"skillconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterPage handles GET /register.
func (s *Server) RegisterPage(c *fiber.Ctx) error {
	return s.renderPage(c, fiber.StatusOK, "register.html", render.PageData{Title: "Register"})
}

// Register handles POST /register. The profile photo is optional; name,
// username and password are not. On success the browser is sent to the login
// page, never logged in directly.
func (s *Server) Register(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	in := service.RegisterInput{
		Name:     c.FormValue("name"),
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		Category: c.FormValue("category"),
		Bio:      c.FormValue("bio"),
	}

	if file, err := c.FormFile("photo"); err == nil && file.Size > 0 {
		f, err := file.Open()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
		}
		defer f.Close()

		photo, err := service.EncodeImageDataURL(f, s.config.MaxUploadSize)
		if err != nil {
			return s.registerError(c, in, err)
		}
		in.Photo = photo
	}

	if _, err := s.authService.Register(ctx, in); err != nil {
		return s.registerError(c, in, err)
	}

	return redirectWith(c, "/login", "notice", "Account created — please login.")
}

func (s *Server) registerError(c *fiber.Ctx, in service.RegisterInput, err error) error {
	return s.renderPage(c, statusForError(err), "register.html", render.PageData{
		Title: "Register",
		Error: userMessage(err),
		Form: map[string]string{
			"name":     in.Name,
			"username": in.Username,
			"category": in.Category,
			"bio":      in.Bio,
		},
	})
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(c *fiber.Ctx) error {
	return s.renderPage(c, fiber.StatusOK, "login.html", render.PageData{Title: "Login"})
}

// Login handles POST /login.
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := s.requestContext(c)
	username := c.FormValue("username")

	if _, err := s.authService.Login(ctx, username, c.FormValue("password")); err != nil {
		return s.renderPage(c, statusForError(err), "login.html", render.PageData{
			Title: "Login",
			Error: userMessage(err),
			Form:  map[string]string{"username": username},
		})
	}

	return c.Redirect("/profile", fiber.StatusSeeOther)
}

// Logout handles POST /logout.
func (s *Server) Logout(c *fiber.Ctx) error {
	if err := s.authService.Logout(s.requestContext(c)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
