// Package models contains data structures for the application's domain models.
package models

// User represents a registered SkillConnect account.
//
// Users are serialized as a JSON array under the sc_users store record.
// Accounts are created at registration and never updated or deleted, so the
// denormalized copies of these fields carried on posts can only diverge if
// the user record disappears entirely.
type User struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	// Password holds the bcrypt hash of the account password.
	Password string `json:"password"`
	Category string `json:"category"`
	Bio      string `json:"bio"`
	// Photo is a data URL, empty when the user registered without one.
	Photo string `json:"photo"`
}
