package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/skylinehq/landscapes/internal/service"
	"github.com/skylinehq/landscapes/pkg/apisdk"
	"github.com/skylinehq/landscapes/pkg/httpx"
	"github.com/skylinehq/landscapes/pkg/slogx"
)

// RegisterHandler serves POST /auth/register.
type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates a user from email, name and password and returns a fresh token pair. The new account is immediately logged in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		apisdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	apisdk.TokenResponse	"access_token, refresh_token"
//	@Failure		400		{object}	apisdk.APIError			"Malformed or incomplete body"
//	@Failure		403		{object}	apisdk.APIError			"Credentials incorrect"
//	@Failure		500		{object}	apisdk.APIError			"Internal server error"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apisdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Name == "" || req.Password == "" {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Signup(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateCredentials) {
			apisdk.ErrCredentialsIncorrect.WriteError(w)
			return
		}
		log.Error("signup failed", "err", err)
		apisdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, apisdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// LoginHandler serves POST /auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log in with email and password
//	@Description	Verifies credentials and returns a fresh token pair, replacing any previous session for the account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		apisdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	apisdk.TokenResponse	"access_token, refresh_token"
//	@Failure		400		{object}	apisdk.APIError			"Malformed or incomplete body"
//	@Failure		403		{object}	apisdk.APIError			"Access Denied"
//	@Failure		500		{object}	apisdk.APIError			"Internal server error"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req apisdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		apisdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, err := h.AuthService.Signin(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccessDenied) {
			apisdk.ErrAccessDenied.WriteError(w)
			return
		}
		log.Error("signin failed", "err", err)
		apisdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, apisdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// LogoutHandler serves POST /auth/logout. It sits behind the access-token
// verifier middleware.
type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log out
//	@Description	Clears the stored refresh token hash so the current refresh token can never be used again. Idempotent.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{boolean}	boolean			"true"
//	@Failure		401	{object}	apisdk.APIError	"Invalid or missing access token"
//	@Failure		500	{object}	apisdk.APIError	"Internal server error"
//	@Router			/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		apisdk.ErrUnauthenticated.WriteError(w)
		return
	}

	if err := h.AuthService.Logout(ctx, userID); err != nil {
		log.Error("logout failed", "user_id", userID, "err", err)
		apisdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, true)
}

// RefreshHandler serves POST /auth/refresh-token. It sits behind the
// refresh-token verifier middleware, so the bearer credential here is the
// refresh token itself.
type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Rotate the token pair
//	@Description	Verifies the presented refresh token against the stored hash and issues a new pair. The presented token becomes permanently unusable.
//	@Tags			Auth
//	@Security		RefreshBearerAuth
//	@Produce		json
//	@Success		200	{object}	apisdk.TokenResponse	"access_token, refresh_token"
//	@Failure		401	{object}	apisdk.APIError			"Invalid or missing refresh token"
//	@Failure		403	{object}	apisdk.APIError			"Access Denied"
//	@Failure		500	{object}	apisdk.APIError			"Internal server error"
//	@Router			/auth/refresh-token [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		apisdk.ErrUnauthenticated.WriteError(w)
		return
	}
	presented, ok := ctx.Value(httpx.CtxKeyBearer).(string)
	if !ok || presented == "" {
		apisdk.ErrUnauthenticated.WriteError(w)
		return
	}

	pair, err := h.AuthService.RefreshTokens(ctx, userID, presented)
	if err != nil {
		if errors.Is(err, service.ErrAccessDenied) {
			apisdk.ErrAccessDenied.WriteError(w)
			return
		}
		log.Error("refresh failed", "user_id", userID, "err", err)
		apisdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, apisdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
