package domain

import "time"

// User is the persisted account record. RefreshTokenHash doubles as the
// session state: nil means logged out, non-nil means one live session whose
// refresh token verifies against the stored hash.
type User struct {
	ID               string
	Email            string // unique, stored case-sensitively
	Name             string
	PasswordHash     string  // argon2id encoded, set once at signup
	RefreshTokenHash *string // argon2id of the most recently issued refresh token
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LoggedIn reports whether the user has an active session.
func (u *User) LoggedIn() bool {
	return u.RefreshTokenHash != nil
}
