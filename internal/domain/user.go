package domain

import "time"

// User is a stored user record. The password hash never leaves the service
// boundary; JSON serialization skips it entirely.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsActive     bool      `json:"is_active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserDraft carries validated input for a create. The store assigns the id
// and both timestamps.
type UserDraft struct {
	Email        string
	FirstName    string
	LastName     string
	IsActive     bool
	PasswordHash string
}

// UserPatch lists the fields an update may change. A nil field means
// "leave as is".
type UserPatch struct {
	Email        *string
	FirstName    *string
	LastName     *string
	IsActive     *bool
	PasswordHash *string
}
