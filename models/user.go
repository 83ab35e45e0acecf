package models

import "time"

// User represents a registered student account used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the store on registration, monotonically increasing.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique, normalized (lowercased and trimmed) e-mail
	// address used as the login identifier.
	Email string `json:"email"`

	// Phone is an optional contact number. When present it is trimmed and
	// unique across accounts; an empty string means "not provided".
	Phone string `json:"phone,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never the plaintext. Excluded from API responses by handlers; the
	// JSON tag exists only for the snapshot store round-trip.
	PasswordHash string `json:"password_hash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the public subset of a User embedded into reports.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Profile returns the non-sensitive view of the user.
func (u User) Profile() Profile {
	return Profile{
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
