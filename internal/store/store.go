package store

import (
	"context"
	"errors"

	"github.com/skylinehq/landscapes/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this; it exposes sub-repositories so new tables get their own
// narrow interface instead of widening one god object.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A duplicate email reports ErrAlreadyExists, never a generic failure.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is the signin lookup. Exact match, case-sensitive.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// UpdateRefreshTokenHash overwrites the stored refresh token hash and
	// bumps updated_at. Passing nil clears the session. Last write wins;
	// concurrent rotations for one user are deliberately unsynchronized.
	UpdateRefreshTokenHash(ctx context.Context, userID string, hash *string) error

	// ClearRefreshTokenHash nulls the hash only when one is set, so an
	// already-logged-out user is untouched. Missing users are a no-op too.
	ClearRefreshTokenHash(ctx context.Context, userID string) error
}
