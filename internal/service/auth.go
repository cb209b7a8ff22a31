package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skylinehq/landscapes/internal/domain"
	"github.com/skylinehq/landscapes/internal/store"
	"github.com/skylinehq/landscapes/pkg/cryptox"
	"github.com/skylinehq/landscapes/pkg/idx"
	"github.com/skylinehq/landscapes/pkg/jwtx"
	"github.com/skylinehq/landscapes/pkg/slogx"
)

var (
	// ErrDuplicateCredentials reports a signup against an email that is
	// already registered.
	ErrDuplicateCredentials = errors.New("duplicate_credentials")

	// ErrAccessDenied covers every authentication failure: unknown email,
	// wrong password, missing session, invalid or rotated-away refresh
	// token. Callers must not be able to tell these apart.
	ErrAccessDenied = errors.New("access_denied")
)

// AuthService orchestrates signup, signin, logout and refresh rotation. The
// store, hasher and token signers are supplied explicitly at construction;
// there is no hidden wiring.
type AuthService struct {
	Store         store.Store
	AccessSigner  jwtx.Signer
	RefreshSigner jwtx.Signer
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Signup creates a user with a hashed password, issues its first token pair
// and records the refresh token hash. The new account is logged in.
func (s *AuthService) Signup(ctx context.Context, email, name, password string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	passwordHash, err := cryptox.HashSecret(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("signup rejected for existing email")
			return nil, ErrDuplicateCredentials
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	pair, err := s.IssueTokens(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshHash(ctx, u.ID, pair.RefreshToken); err != nil {
		return nil, err
	}

	return pair, nil
}

// Signin verifies credentials and issues a fresh token pair, replacing any
// previous session. Unknown email and wrong password produce the identical
// ErrAccessDenied so the endpoint cannot be used to probe registered emails.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifySecret(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			l.Info("signin password verification failed", "user_id", u.ID)
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}

	pair, err := s.IssueTokens(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshHash(ctx, u.ID, pair.RefreshToken); err != nil {
		return nil, err
	}

	return pair, nil
}

// Logout clears the stored refresh hash when one is set. It is idempotent:
// logging out an already-logged-out or unknown user succeeds quietly.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.Store.Users().ClearRefreshTokenHash(ctx, userID)
}

// RefreshTokens rotates the session. The presented refresh token must verify
// against the stored hash; on success a new pair is issued and its refresh
// hash overwrites the old one, so the presented token can never be replayed.
// Concurrent rotations for one user race with last-write-wins semantics.
func (s *AuthService) RefreshTokens(ctx context.Context, userID, refreshToken string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !u.LoggedIn() {
		return nil, ErrAccessDenied
	}

	if err := cryptox.VerifySecret(refreshToken, *u.RefreshTokenHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			l.Info("refresh token verification failed", "user_id", u.ID)
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("verify refresh token: %w", err)
	}

	pair, err := s.IssueTokens(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshHash(ctx, u.ID, pair.RefreshToken); err != nil {
		return nil, err
	}

	return pair, nil
}

// IssueTokens builds the identity claims once and signs them twice: with the
// access secret and TTL, and with the refresh secret and TTL. Exposed
// separately so a pair can be minted outside a full signup/signin flow.
func (s *AuthService) IssueTokens(userID, email string) (*domain.TokenPair, error) {
	now := time.Now().UTC()

	access, err := s.AccessSigner.Sign(jwtx.NewClaims(userID, email, s.Issuer, s.AccessTTL, now))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := s.RefreshSigner.Sign(jwtx.NewClaims(userID, email, s.Issuer, s.RefreshTTL, now))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) storeRefreshHash(ctx context.Context, userID, refreshToken string) error {
	hash, err := cryptox.HashSecret(refreshToken)
	if err != nil {
		return fmt.Errorf("hash refresh token: %w", err)
	}
	if err := s.Store.Users().UpdateRefreshTokenHash(ctx, userID, &hash); err != nil {
		return fmt.Errorf("store refresh hash: %w", err)
	}
	return nil
}
