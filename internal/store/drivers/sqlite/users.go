package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/skylinehq/landscapes/internal/domain"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, email, name, password_hash, refresh_token_hash, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, password_hash, refresh_token_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.PasswordHash, mapOptionalString(u.RefreshTokenHash), now, now,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) UpdateRefreshTokenHash(ctx context.Context, userID string, hash *string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET refresh_token_hash = ?, updated_at = ? WHERE id = ?`,
		mapOptionalString(hash), time.Now().UTC(), userID,
	)
	return err
}

func (r *usersRepo) ClearRefreshTokenHash(ctx context.Context, userID string) error {
	// The WHERE clause only fires when a session exists, mirroring logout's
	// idempotence: clearing an already-cleared hash touches nothing.
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET refresh_token_hash = NULL, updated_at = ?
		WHERE id = ? AND refresh_token_hash IS NOT NULL`,
		time.Now().UTC(), userID,
	)
	return err
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u           domain.User
		refreshHash sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &refreshHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.RefreshTokenHash = mapNullString(refreshHash)
	return u, nil
}
