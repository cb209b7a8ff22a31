package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/skylinehq/landscapes/pkg/slogx"
)

// DefaultLandscapeBaseURL is the Pixabay image search API.
const DefaultLandscapeBaseURL = "https://pixabay.com/api/"

// maxUpstreamBody caps how much of the upstream response we buffer.
const maxUpstreamBody = 4 << 20

// ErrUpstream reports that the image provider could not be reached or
// answered with an error. The handler maps it to 400.
var ErrUpstream = errors.New("landscape: upstream failure")

// LandscapeService is a thin pass-through to the external image search API.
// No caching, no retries; upstream errors are translated, not recovered.
type LandscapeService struct {
	APIKey     string
	BaseURL    string       // defaults to DefaultLandscapeBaseURL
	HTTPClient *http.Client // defaults to http.DefaultClient
}

// List fetches landscape photos and returns the upstream JSON verbatim.
func (s *LandscapeService) List(ctx context.Context) (json.RawMessage, error) {
	l := slogx.FromContext(ctx)

	base := s.BaseURL
	if base == "" {
		base = DefaultLandscapeBaseURL
	}

	q := url.Values{}
	q.Set("key", s.APIKey)
	q.Set("q", "landscapes")
	q.Set("image_type", "photo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		l.Warn("landscape upstream unreachable", "err", err)
		return nil, ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		l.Warn("landscape upstream returned error", "status", resp.StatusCode)
		return nil, ErrUpstream
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		l.Warn("landscape upstream body read failed", "err", err)
		return nil, ErrUpstream
	}

	return json.RawMessage(body), nil
}
