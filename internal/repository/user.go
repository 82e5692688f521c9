// Package repository provides data access over the key-value store records.
//
// Each repository owns one JSON-array record. Every mutation is a full
// read-modify-write of that record: load the whole list, change it, write the
// whole list back. Corrupt or absent records decode to the empty collection.
package repository

import (
	"context"
	"encoding/json"
	"strings"

	"skillconnect/internal/kv"
	"skillconnect/internal/middleware"
	"skillconnect/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsFold(ctx context.Context, username string) (bool, error)
}

// userRepository implements UserRepository
type userRepository struct {
	store *kv.Store
}

// NewUserRepository creates a new user repository over the given store.
func NewUserRepository(store *kv.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	raw, ok, err := r.store.Get(ctx, kv.UsersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		// Malformed data degrades to an empty collection, never an error.
		middleware.Logger.WarnContext(ctx, "ignoring malformed user record", "error", err)
		return []models.User{}, nil
	}
	return users, nil
}

func (r *userRepository) Insert(ctx context.Context, user models.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)

	encoded, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kv.UsersKey, string(encoded))
}

// GetByUsername resolves a user by exact username match. Returns (nil, nil)
// when no user matches.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// ExistsFold reports whether a user exists under a case-insensitive username
// comparison. Only registration uses this; all other lookups are exact.
func (r *userRepository) ExistsFold(ctx context.Context, username string) (bool, error) {
	users, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return true, nil
		}
	}
	return false, nil
}
