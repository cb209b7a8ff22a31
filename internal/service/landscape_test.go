package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skylinehq/landscapes/internal/service"
	"github.com/stretchr/testify/require"
)

func TestLandscapeList(t *testing.T) {
	t.Parallel()

	const upstreamBody = `{"total":42,"hits":[{"id":1,"tags":"mountain, lake"}]}`

	var gotQuery map[string]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"key":        r.URL.Query().Get("key"),
			"q":          r.URL.Query().Get("q"),
			"image_type": r.URL.Query().Get("image_type"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamBody))
	}))
	defer upstream.Close()

	svc := &service.LandscapeService{APIKey: "test-key", BaseURL: upstream.URL}

	body, err := svc.List(context.Background())
	require.NoError(t, err)

	// The upstream payload is passed through verbatim, not reshaped.
	require.JSONEq(t, upstreamBody, string(body))
	require.Equal(t, "test-key", gotQuery["key"])
	require.Equal(t, "landscapes", gotQuery["q"])
	require.Equal(t, "photo", gotQuery["image_type"])
}

func TestLandscapeList_UpstreamError(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid key"}`, http.StatusBadRequest)
	}))
	defer upstream.Close()

	svc := &service.LandscapeService{APIKey: "bad-key", BaseURL: upstream.URL}

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, service.ErrUpstream)
}

func TestLandscapeList_UpstreamUnreachable(t *testing.T) {
	t.Parallel()

	// A server that is already closed refuses connections.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	svc := &service.LandscapeService{APIKey: "k", BaseURL: upstream.URL}

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, service.ErrUpstream)
}
