package render

import (
	"bytes"
	"strings"
	"testing"

	"skillconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderUsers = []models.User{
	{Name: "Alice Smith", Username: "alice", Category: "Design", Photo: "data:image/png;base64,AAAA"},
	{Name: "Bob Jones", Username: "bob", Category: "Music"},
}

func renderFeed(t *testing.T, posts []models.Post, current string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Feed(&buf, BuildViews(posts, renderUsers, current)))
	return buf.String()
}

func TestBuildViews_ResolvesOwnerLive(t *testing.T) {
	t.Parallel()
	posts := []models.Post{{
		ID:       1,
		Username: "alice",
		// Stale denormalized copies that must not win over the live record.
		Name:     "Old Name",
		Category: "Old Category",
		Caption:  "hello",
	}}

	views := BuildViews(posts, renderUsers, "")
	require.Len(t, views, 1)
	assert.Equal(t, "Alice Smith", views[0].OwnerName)
	assert.Equal(t, "Design", views[0].OwnerCategory)
}

func TestBuildViews_MissingOwnerFallsBack(t *testing.T) {
	t.Parallel()
	posts := []models.Post{{ID: 1, Username: "ghost", Caption: "orphaned"}}

	views := BuildViews(posts, renderUsers, "")
	require.Len(t, views, 1)
	assert.Equal(t, "ghost", views[0].OwnerName)
	assert.Empty(t, views[0].OwnerCategory)
	assert.Equal(t, PlaceholderAvatar, string(views[0].OwnerPhoto))
}

func TestBuildViews_DeleteVisibility(t *testing.T) {
	t.Parallel()
	posts := []models.Post{{ID: 1, Username: "alice", Caption: "mine"}}

	assert.True(t, BuildViews(posts, renderUsers, "alice")[0].IsMine)
	assert.False(t, BuildViews(posts, renderUsers, "bob")[0].IsMine)
	assert.False(t, BuildViews(posts, renderUsers, "Alice")[0].IsMine, "ownership match is exact")
	assert.False(t, BuildViews(posts, renderUsers, "")[0].IsMine)
}

func TestFeed_EscapesUserContent(t *testing.T) {
	t.Parallel()
	posts := []models.Post{{
		ID:       1,
		Username: "alice",
		Caption:  `<script>alert("x")</script>`,
		Comments: []models.Comment{{User: "<b>Guest</b>", Text: `<img src=x>`}},
	}}

	html := renderFeed(t, posts, "")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<img src=x>")
	assert.NotContains(t, html, "<b>Guest</b>")
}

func TestFeed_RendersDataURLImages(t *testing.T) {
	t.Parallel()
	posts := []models.Post{{ID: 1, Username: "alice", Caption: "pic", Image: "data:image/png;base64,BBBB"}}

	html := renderFeed(t, posts, "")
	assert.Contains(t, html, `src="data:image/png;base64,BBBB"`)
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestFeed_DeleteControlOnlyForOwner(t *testing.T) {
	t.Parallel()
	posts := []models.Post{{ID: 42, Username: "alice", Caption: "mine"}}

	owner := renderFeed(t, posts, "alice")
	assert.Contains(t, owner, "/posts/42/delete")

	viewer := renderFeed(t, posts, "bob")
	assert.NotContains(t, viewer, "/posts/42/delete")
}

func TestFeed_CommentsInOrder(t *testing.T) {
	t.Parallel()
	posts := []models.Post{{
		ID:       1,
		Username: "alice",
		Caption:  "c",
		Comments: []models.Comment{
			{User: "bob", Text: "first"},
			{User: "Guest", Text: "second"},
			{User: "bob", Text: "third"},
		},
	}}

	html := renderFeed(t, posts, "")
	first := strings.Index(html, "first")
	second := strings.Index(html, "second")
	third := strings.Index(html, "third")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
	assert.Contains(t, html, "<span>3</span>")
}

func TestFeed_EmptyState(t *testing.T) {
	t.Parallel()
	html := renderFeed(t, nil, "")
	assert.Contains(t, html, "No posts yet")
}

func TestPage_HomeCarriesQueryState(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := Page(&buf, "home.html", PageData{
		Title:    "Home",
		Search:   "sunset",
		Category: "Design",
		Posts:    nil,
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `value="sunset"`)
	assert.Contains(t, html, `<option value="Design" selected>`)
	assert.Contains(t, html, "No posts yet")
}

func TestPage_ProfileSidebar(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := Page(&buf, "profile.html", PageData{
		Title: "Alice Smith",
		Profile: &ProfileView{
			Name:     "Alice Smith",
			Category: "Design",
			Bio:      "I paint things.",
			Photo:    PlaceholderProfile,
		},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Alice Smith")
	assert.Contains(t, html, "I paint things.")
	assert.Contains(t, html, PlaceholderProfile)
}
