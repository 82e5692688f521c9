// Package service implements the application's use cases over the repositories.
package service

import (
	"context"
	"strings"

	"skillconnect/internal/models"
	"skillconnect/internal/repository"
	"skillconnect/internal/session"
	"skillconnect/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCategory is assigned when registration supplies no skill category.
const DefaultCategory = "Others"

type AuthService struct {
	userRepo repository.UserRepository
	sessions *session.Manager
}

type RegisterInput struct {
	Name     string
	Username string
	Password string
	Category string
	Bio      string
	Photo    string
}

func NewAuthService(userRepo repository.UserRepository, sessions *session.Manager) *AuthService {
	return &AuthService{userRepo: userRepo, sessions: sessions}
}

// Register creates a new account. Username uniqueness is checked
// case-insensitively here and nowhere else; every later lookup is exact.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)

	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateBio(in.Bio); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	category := in.Category
	if category == "" {
		category = DefaultCategory
	}

	exists, err := s.userRepo.ExistsFold(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewValidationError("Username already exists. Choose another.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := models.User{
		Name:     name,
		Username: username,
		Password: string(hashed),
		Category: category,
		Bio:      strings.TrimSpace(in.Bio),
		Photo:    in.Photo,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates by exact username match and password comparison, then
// records the session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials.")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials.")
	}

	if err := s.sessions.SetCurrent(ctx, user.Username); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser resolves the session to a live user record. When the session
// references a user that no longer exists the session is cleared, matching
// the forced-logout flow. No session (or a dangling one) returns (nil, nil).
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	username, ok := s.sessions.Current(ctx)
	if !ok {
		return nil, nil
	}
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if err := s.sessions.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return user, nil
}
