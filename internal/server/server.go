// Package server contains the HTTP handlers for the application's pages and actions.
package server

import (
	"context"
	"fmt"
	"net/http"

	"skillconnect/internal/cache"
	"skillconnect/internal/config"
	"skillconnect/internal/kv"
	"skillconnect/internal/middleware"
	"skillconnect/internal/render"
	"skillconnect/internal/repository"
	"skillconnect/internal/service"
	"skillconnect/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          *kv.Store
	sessions       *session.Manager
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	promMiddleware *fiberprometheus.FiberPrometheus
	authService    *service.AuthService
	postService    *service.PostService
	feedService    *service.FeedService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	store, err := kv.Open(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("store open failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, store), nil
}

// NewServerWithDeps creates a Server using an already-opened store. Tests use
// this with an in-memory store and without Redis.
func NewServerWithDeps(cfg *config.Config, store *kv.Store) *Server {
	userRepo := repository.NewUserRepository(store)
	postRepo := repository.NewPostRepository(store)
	sessions := session.NewManager(store)

	return &Server{
		config:         cfg,
		store:          store,
		sessions:       sessions,
		userRepo:       userRepo,
		postRepo:       postRepo,
		promMiddleware: middleware.InitMetrics("skillconnect"),
		authService:    service.NewAuthService(userRepo, sessions),
		postService:    service.NewPostService(postRepo, userRepo, cfg.BaseURL),
		feedService:    service.NewFeedService(postRepo, userRepo),
	}
}

// SetupMiddleware configures the middleware stack on the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.StructuredLogger())
	app.Use(cors.New())

	s.promMiddleware.RegisterAt(app, "/metrics")
	app.Use(s.promMiddleware.Middleware)
}

// SetupRoutes registers all page and action routes.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.Health)

	app.Use("/static", filesystem.New(filesystem.Config{
		Root: http.FS(render.StaticFS()),
	}))

	// Pages
	app.Get("/", s.Home)
	app.Get("/feed", s.FeedFragment)
	app.Get("/register", s.RegisterPage)
	app.Post("/register", s.Register)
	app.Get("/login", s.LoginPage)
	app.Post("/login", s.Login)
	app.Post("/logout", s.Logout)
	app.Get("/profile", s.Profile)

	// Post actions
	app.Post("/posts", s.CreatePost)
	app.Post("/posts/:id/like", s.LikePost)
	app.Post("/posts/:id/comments", s.PostComment)
	app.Post("/posts/:id/delete", s.DeletePost)
	app.Get("/posts/:id/share", s.SharePost)
}

// Health handles GET /health.
func (s *Server) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if client := cache.GetClient(); client != nil {
		if err := client.Close(); err != nil {
			middleware.Logger.ErrorContext(ctx, "redis close failed", "error", err)
		}
	}
	return s.store.Close()
}
