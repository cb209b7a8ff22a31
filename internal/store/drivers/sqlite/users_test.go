package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/skylinehq/landscapes/internal/domain"
	"github.com/skylinehq/landscapes/internal/store"
	"github.com/skylinehq/landscapes/internal/store/drivers/sqlite"
	"github.com/skylinehq/landscapes/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestUser(email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g",
	}
}

func TestCreateUser_And_Lookups(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("a@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	byEmail, err := st.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, "Test User", byEmail.Name)
	require.Nil(t, byEmail.RefreshTokenHash)
	require.False(t, byEmail.LoggedIn())
	require.False(t, byEmail.CreatedAt.IsZero())

	byID, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", byID.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	first := newTestUser("dup@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, first))

	second := newTestUser("dup@x.com")
	err := st.Users().CreateUser(ctx, second)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// The first user must be unaffected by the failed insert.
	got, err := st.Users().GetUserByEmail(ctx, "dup@x.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
}

func TestGetUser_EmailIsCaseSensitive(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Users().CreateUser(ctx, newTestUser("Case@x.com")))

	_, err := st.Users().GetUserByEmail(ctx, "case@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Users().GetUserByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateRefreshTokenHash(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("session@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	hash := "$argon2id$v=19$m=19456,t=2,p=1$cmVmcmVzaHNhbHQxMjM0$cmVmcmVzaGhhc2hyZWZyZXNoaGFzaHJlZnJlc2hoYQ"
	require.NoError(t, st.Users().UpdateRefreshTokenHash(ctx, u.ID, &hash))

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.LoggedIn())
	require.Equal(t, hash, *got.RefreshTokenHash)

	// Overwrite wins over the previous value.
	replacement := "$argon2id$v=19$m=19456,t=2,p=1$b3RoZXJzYWx0b3RoZXJz$b3RoZXJoYXNob3RoZXJoYXNob3RoZXJoYXNob3Ro"
	require.NoError(t, st.Users().UpdateRefreshTokenHash(ctx, u.ID, &replacement))

	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, replacement, *got.RefreshTokenHash)

	// Nil clears the session.
	require.NoError(t, st.Users().UpdateRefreshTokenHash(ctx, u.ID, nil))
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.LoggedIn())
}

func TestClearRefreshTokenHash_Idempotent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	u := newTestUser("logout@x.com")
	hash := "$argon2id$v=19$m=19456,t=2,p=1$cmVmcmVzaHNhbHQxMjM0$cmVmcmVzaGhhc2hyZWZyZXNoaGFzaHJlZnJlc2hoYQ"
	u.RefreshTokenHash = &hash
	require.NoError(t, st.Users().CreateUser(ctx, u))

	require.NoError(t, st.Users().ClearRefreshTokenHash(ctx, u.ID))
	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Nil(t, got.RefreshTokenHash)

	// Clearing again is a no-op, and unknown users are not an error.
	require.NoError(t, st.Users().ClearRefreshTokenHash(ctx, u.ID))
	require.NoError(t, st.Users().ClearRefreshTokenHash(ctx, idx.New().String()))
}
