package http

import (
	"errors"
	"net/http"

	"github.com/skylinehq/landscapes/internal/service"
	"github.com/skylinehq/landscapes/pkg/apisdk"
	"github.com/skylinehq/landscapes/pkg/slogx"
)

// LandscapesHandler serves GET /landscapes, a pass-through to the external
// image search API.
type LandscapesHandler struct {
	LandscapeService *service.LandscapeService
}

// ServeHTTP godoc
//
//	@Summary		List landscape photos
//	@Description	Forwards a landscape photo search to the external image provider and returns its JSON response verbatim.
//	@Tags			Landscapes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	object			"Upstream search response"
//	@Failure		400	{object}	apisdk.APIError	"Failed to list landscapes"
//	@Failure		401	{object}	apisdk.APIError	"Invalid or missing access token"
//	@Router			/landscapes [get].
func (h *LandscapesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	body, err := h.LandscapeService.List(ctx)
	if err != nil {
		if errors.Is(err, service.ErrUpstream) {
			apisdk.ErrUpstreamFailure.WriteError(w)
			return
		}
		log.Error("landscape listing failed", "err", err)
		apisdk.ErrServerError.WriteError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
