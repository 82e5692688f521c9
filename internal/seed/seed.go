// Package seed provides store seeding utilities for development and demos.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillconnect/internal/kv"
	"skillconnect/internal/models"
	"skillconnect/internal/render"
	"skillconnect/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

// Options configuration for the seeder
type Options struct {
	NumUsers int
	NumPosts int
	// Password is assigned to every generated account so demo logins work.
	Password string
	// FixturePath optionally points at a YAML fixture applied before the
	// generated data.
	FixturePath string
}

// demoImage is a 1x1 PNG data URL standing in for real uploads.
const demoImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

// Run populates the store with fixture and generated users and posts.
func Run(ctx context.Context, store *kv.Store, opts Options) error {
	userRepo := repository.NewUserRepository(store)
	postRepo := repository.NewPostRepository(store)

	if opts.Password == "" {
		opts.Password = "password"
	}
	// MinCost keeps large seeds fast; these are throwaway demo accounts.
	hashed, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}

	if opts.FixturePath != "" {
		fixture, err := LoadFixture(opts.FixturePath)
		if err != nil {
			return fmt.Errorf("fixture load failed: %w", err)
		}
		if err := fixture.Apply(ctx, userRepo, postRepo); err != nil {
			return fmt.Errorf("fixture apply failed: %w", err)
		}
	}

	faker := gofakeit.New(0)

	usernames := make([]string, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		username := fmt.Sprintf("%s%d", strings.ToLower(faker.Username()), i)
		user := models.User{
			Name:     faker.Name(),
			Username: username,
			Password: string(hashed),
			Category: render.Categories[faker.Number(0, len(render.Categories)-1)],
			Bio:      faker.Sentence(10),
		}
		if err := userRepo.Insert(ctx, user); err != nil {
			return err
		}
		usernames = append(usernames, username)
	}

	if opts.NumPosts > 0 && len(usernames) == 0 {
		return fmt.Errorf("cannot seed posts without users")
	}

	users, err := userRepo.List(ctx)
	if err != nil {
		return err
	}
	byUsername := make(map[string]models.User, len(users))
	for _, u := range users {
		byUsername[u.Username] = u
	}

	// Spread the ids into the past so generated posts stay append-ordered.
	base := time.Now().Add(-time.Duration(opts.NumPosts) * time.Minute).UnixMilli()
	for i := 0; i < opts.NumPosts; i++ {
		owner := byUsername[usernames[faker.Number(0, len(usernames)-1)]]

		comments := make([]models.Comment, 0)
		for j := faker.Number(0, 3); j > 0; j-- {
			comments = append(comments, models.Comment{
				User: usernames[faker.Number(0, len(usernames)-1)],
				Text: faker.Sentence(5),
			})
		}

		post := models.Post{
			ID:        base + int64(i)*1000,
			Username:  owner.Username,
			Name:      owner.Name,
			UserPhoto: owner.Photo,
			Category:  owner.Category,
			Caption:   faker.Sentence(6),
			Image:     demoImage,
			Likes:     faker.Number(0, 40),
			Comments:  comments,
		}
		if err := postRepo.Insert(ctx, post); err != nil {
			return err
		}
	}

	return nil
}
