package models

import "time"

// Credentials is the transient sign-up/login payload. It is never persisted
// by the client.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the server-side account record.
type User struct {
	// UserID is the internal identifier; it never leaves the server.
	UserID int64 `json:"-"`

	Name  string `json:"name"`
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
