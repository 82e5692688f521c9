package models

// Post represents an image post in the SkillConnect feed.
//
// Posts are serialized as a JSON array under the sc_posts store record, in
// append (creation) order. Name, UserPhoto and Category are copies of the
// owner's attributes taken at creation time; the renderer re-resolves the
// live user for display instead of trusting them.
type Post struct {
	// ID is the creation timestamp in Unix milliseconds and acts as the
	// unique key for the post.
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	UserPhoto string `json:"userPhoto"`
	Category  string `json:"category"`
	Caption   string `json:"caption"`
	// Image is the post picture as a data URL.
	Image    string    `json:"image"`
	Likes    int       `json:"likes"`
	Comments []Comment `json:"comments"`
}

// Comment is a single comment on a post. Comments are append-only; the User
// field is the commenter's session username or "Guest" and is not a strict
// reference into the user list.
type Comment struct {
	User string `json:"user"`
	Text string `json:"text"`
}
