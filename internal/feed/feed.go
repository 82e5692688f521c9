// Package feed derives the filtered, reverse-chronological view of posts
// shown on the home and profile pages. It is a pure function of its inputs;
// callers re-run it after every mutation.
package feed

import (
	"strings"

	"skillconnect/internal/models"
)

// CategoryAll is the category filter value that matches every post.
const CategoryAll = "all"

// Query carries the free-text search term and category filter for one view.
type Query struct {
	Search   string
	Category string
}

// Apply filters posts against q and returns the matching posts newest-first.
//
// The input list is append-ordered (oldest first); the output is the full
// reverse of the filtered subsequence. The owner is resolved live from users
// by exact username match: category filtering compares the live owner's
// category case-sensitively (a missing owner has the empty category, which
// only CategoryAll matches), and the search term matches case-insensitively
// against the caption or the live owner's name. Apply never fails; posts with
// unresolvable owners simply degrade to empty owner fields.
func Apply(posts []models.Post, users []models.User, q Query) []models.Post {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := q.Category
	if category == "" {
		category = CategoryAll
	}

	byUsername := make(map[string]models.User, len(users))
	for _, u := range users {
		byUsername[u.Username] = u
	}

	var filtered []models.Post
	for _, p := range posts {
		owner := byUsername[p.Username]

		if category != CategoryAll && owner.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Caption), search) &&
			!strings.Contains(strings.ToLower(owner.Name), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	reversed := make([]models.Post, 0, len(filtered))
	for i := len(filtered) - 1; i >= 0; i-- {
		reversed = append(reversed, filtered[i])
	}
	return reversed
}
