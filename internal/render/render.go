// Package render turns filtered posts into HTML fragments and full pages.
//
// All free-text fields (captions, owner names, comment text) pass through
// html/template contextual escaping, so user-supplied content can never become
// live markup. Post and avatar images are trusted data URLs and are marked
// template.URL to survive the URL filter.
package render

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"skillconnect/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

//go:embed static
var staticFS embed.FS

// StaticFS exposes the embedded stylesheet and other page assets for the
// /static route.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Placeholder images used when a user registered without a photo.
const (
	PlaceholderAvatar  = "https://via.placeholder.com/80"
	PlaceholderProfile = "https://via.placeholder.com/140"
)

// Categories is the fixed skill-category list offered at registration and in
// the feed filter. "Others" is the registration default.
var Categories = []string{
	"Design", "Development", "Marketing", "Music", "Photography", "Writing", "Others",
}

// CommentView is one rendered comment line.
type CommentView struct {
	User string
	Text string
}

// PostView is the display form of one post, with the owner re-resolved live
// rather than trusted from the post's denormalized copy.
type PostView struct {
	ID            int64
	OwnerName     string
	OwnerCategory string
	OwnerPhoto    template.URL
	Image         template.URL
	Caption       string
	Likes         int
	CommentCount  int
	Comments      []CommentView
	IsMine        bool
}

// ProfileView is the profile page sidebar.
type ProfileView struct {
	Name     string
	Category string
	Bio      string
	Photo    template.URL
}

// PageData carries everything a page template needs.
type PageData struct {
	Title       string
	CurrentUser string
	LoggedIn    bool
	Notice      string
	Error       string
	Search      string
	Category    string
	Categories  []string
	Posts       []PostView
	Profile     *ProfileView
	Form        map[string]string
}

// BuildViews maps each post to its display form. The owner is looked up in
// users by exact username; when the owner is missing the view falls back to
// the post's username and an empty category. current is the session username
// deciding delete-control visibility by exact match.
func BuildViews(posts []models.Post, users []models.User, current string) []PostView {
	byUsername := make(map[string]models.User, len(users))
	for _, u := range users {
		byUsername[u.Username] = u
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		owner, known := byUsername[p.Username]

		name := owner.Name
		if !known || name == "" {
			name = p.Username
		}
		photo := owner.Photo
		if photo == "" {
			photo = PlaceholderAvatar
		}

		comments := make([]CommentView, 0, len(p.Comments))
		for _, c := range p.Comments {
			comments = append(comments, CommentView{User: c.User, Text: c.Text})
		}

		views = append(views, PostView{
			ID:            p.ID,
			OwnerName:     name,
			OwnerCategory: owner.Category,
			OwnerPhoto:    template.URL(photo),
			Image:         template.URL(p.Image),
			Caption:       p.Caption,
			Likes:         p.Likes,
			CommentCount:  len(p.Comments),
			Comments:      comments,
			IsMine:        current != "" && current == p.Username,
		})
	}
	return views
}

// Feed writes the feed fragment for the given views. An empty view list
// renders the "no posts yet" notice.
func Feed(w io.Writer, views []PostView) error {
	return templates.ExecuteTemplate(w, "feed.html", views)
}

// Page writes a full page template by name.
func Page(w io.Writer, name string, data PageData) error {
	if data.Categories == nil {
		data.Categories = Categories
	}
	return templates.ExecuteTemplate(w, name, data)
}
