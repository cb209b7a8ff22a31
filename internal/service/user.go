package service

import (
	"context"

	"github.com/skylinehq/landscapes/internal/domain"
	"github.com/skylinehq/landscapes/internal/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id. A vanished user surfaces as
// store.ErrNotFound; unlike signin, the profile endpoint reports that
// distinctly (the caller already proved it holds a token for this id).
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
