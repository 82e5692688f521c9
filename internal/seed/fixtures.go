package seed

import (
	"context"
	"os"
	"time"

	"skillconnect/internal/models"
	"skillconnect/internal/repository"
	"skillconnect/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Fixture is a hand-written seed dataset.
type Fixture struct {
	Users []FixtureUser `yaml:"users"`
	Posts []FixturePost `yaml:"posts"`
}

type FixtureUser struct {
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Category string `yaml:"category"`
	Bio      string `yaml:"bio"`
}

type FixturePost struct {
	Username string           `yaml:"username"`
	Caption  string           `yaml:"caption"`
	Likes    int              `yaml:"likes"`
	Comments []FixtureComment `yaml:"comments"`
}

type FixtureComment struct {
	User string `yaml:"user"`
	Text string `yaml:"text"`
}

// LoadFixture parses a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, err
	}
	return &fixture, nil
}

// Apply inserts the fixture's users and posts. Fixture posts get sequential
// ids in the past and denormalize their owner the way real uploads do.
func (f *Fixture) Apply(ctx context.Context, userRepo repository.UserRepository, postRepo repository.PostRepository) error {
	for _, u := range f.Users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.MinCost)
		if err != nil {
			return err
		}
		category := u.Category
		if category == "" {
			category = service.DefaultCategory
		}
		if err := userRepo.Insert(ctx, models.User{
			Name:     u.Name,
			Username: u.Username,
			Password: string(hashed),
			Category: category,
			Bio:      u.Bio,
		}); err != nil {
			return err
		}
	}

	base := time.Now().Add(-time.Duration(len(f.Posts)+1) * time.Hour).UnixMilli()
	for i, p := range f.Posts {
		owner, err := userRepo.GetByUsername(ctx, p.Username)
		if err != nil {
			return err
		}

		post := models.Post{
			ID:       base + int64(i)*1000,
			Username: p.Username,
			Caption:  p.Caption,
			Image:    demoImage,
			Likes:    p.Likes,
			Comments: make([]models.Comment, 0, len(p.Comments)),
		}
		if owner != nil {
			post.Name = owner.Name
			post.UserPhoto = owner.Photo
			post.Category = owner.Category
		}
		for _, cm := range p.Comments {
			post.Comments = append(post.Comments, models.Comment{User: cm.User, Text: cm.Text})
		}

		if err := postRepo.Insert(ctx, post); err != nil {
			return err
		}
	}
	return nil
}
