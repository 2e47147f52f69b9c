package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, generated server-side
	// at signup. Opaque to clients.
	ID string `json:"id"`

	// Username is the unique, case-sensitive login identifier.
	// Leading and trailing whitespace is trimmed before persistence.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never exposed via JSON and never holds plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body shape shared by the signup and login
// endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
