package domain

import "time"

// AuthProvider identifies how a user signs in
type AuthProvider string

const (
	ProviderPassword AuthProvider = "password"
	ProviderGoogle   AuthProvider = "google"
)

// User represents a registered guest
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash *string // nil for federated accounts
	Provider     AuthProvider
	ProviderID   *string // subject at the identity provider
	DisplayName  *string
	PhotoURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword returns true if the user can sign in with email and password
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Name returns the display name with a fallback for anonymous profiles
func (u *User) Name() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return DefaultGuestDisplayName
}

// ProfileUpdate holds a merge-style profile change; nil fields are left untouched
type ProfileUpdate struct {
	DisplayName *string
	PhotoURL    *string
}

// IsEmpty returns true if the update changes nothing
func (p ProfileUpdate) IsEmpty() bool {
	return p.DisplayName == nil && p.PhotoURL == nil
}

// Session is an authenticated browser session
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
