package http

import (
	"errors"
	"net/http"

	"github.com/skylinehq/landscapes/internal/service"
	"github.com/skylinehq/landscapes/internal/store"
	"github.com/skylinehq/landscapes/pkg/apisdk"
	"github.com/skylinehq/landscapes/pkg/httpx"
	"github.com/skylinehq/landscapes/pkg/slogx"
)

// MeHandler serves GET /users/me.
type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get the authenticated user's profile
//	@Description	Returns the name and email of the token's subject. A valid token whose user has since been deleted yields 404.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	apisdk.ProfileResponse	"name, email"
//	@Failure		401	{object}	apisdk.APIError			"Invalid or missing access token"
//	@Failure		404	{object}	apisdk.APIError			"User not found"
//	@Failure		500	{object}	apisdk.APIError			"Internal server error"
//	@Router			/users/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		apisdk.ErrUnauthenticated.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apisdk.ErrUserNotFound.WriteError(w)
			return
		}
		log.Error("failed to load user", "user_id", userID, "err", err)
		apisdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, apisdk.ProfileResponse{
		Name:  user.Name,
		Email: user.Email,
	})
}
