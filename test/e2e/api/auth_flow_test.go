package api_test

import (
	"net/http"
	"testing"

	"github.com/skylinehq/landscapes/pkg/apisdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterLoginFlow walks the happy path: register, log in again, and
// check the duplicate-email rejection.
func TestRegisterLoginFlow(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := apisdk.NewClient(baseURL)

	pair := registerAccount(t, client, "alice@example.com", "Alice", "S3cret!pass")
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// Logging in afterwards yields a fresh, different pair.
	loginPair, err := client.Login(t.Context(), "alice@example.com", "S3cret!pass")
	require.NoError(t, err)
	require.NotEmpty(t, loginPair.AccessToken)
	require.NotEqual(t, pair.RefreshToken, loginPair.RefreshToken)

	// Registering the same email again is rejected without confirming the
	// address exists.
	_, err = client.Register(t.Context(), "alice@example.com", "Mallory", "other")
	requireAPIError(t, err, http.StatusForbidden, apisdk.ErrorCodeCredentialsIncorrect)

	t.Logf("Register/login flow completed")
}

// TestLoginFailures verifies bad credentials are indistinguishable.
func TestLoginFailures(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := apisdk.NewClient(baseURL)
	registerAccount(t, client, "bob@example.com", "Bob", "correct-horse")

	_, wrongPwErr := client.Login(t.Context(), "bob@example.com", "wrong-horse")
	requireAPIError(t, wrongPwErr, http.StatusForbidden, apisdk.ErrorCodeAccessDenied)

	_, unknownErr := client.Login(t.Context(), "nobody@example.com", "correct-horse")
	requireAPIError(t, unknownErr, http.StatusForbidden, apisdk.ErrorCodeAccessDenied)

	// Same status, same code, same message.
	require.Equal(t, wrongPwErr.Error(), unknownErr.Error())
}

// TestRefreshRotation verifies the rotation chain: each refresh token works
// exactly once.
func TestRefreshRotation(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := apisdk.NewClient(baseURL)
	pair := registerAccount(t, client, "carol@example.com", "Carol", "pw12345")

	rotated, err := client.RefreshToken(t.Context(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.AccessToken)
	require.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The spent token is permanently dead.
	_, err = client.RefreshToken(t.Context(), pair.RefreshToken)
	requireAPIError(t, err, http.StatusForbidden, apisdk.ErrorCodeAccessDenied)

	// The rotated token continues the chain.
	again, err := client.RefreshToken(t.Context(), rotated.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, again.RefreshToken)

	// An access token is signed with the wrong secret for this endpoint.
	_, err = client.RefreshToken(t.Context(), again.AccessToken)
	require.Error(t, err)
	var apiErr *apisdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

// TestLogoutFlow verifies logout is idempotent and kills the refresh chain.
func TestLogoutFlow(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := apisdk.NewClient(baseURL)
	pair := registerAccount(t, client, "dave@example.com", "Dave", "pw12345")

	ok, err := client.Logout(t.Context(), pair.AccessToken)
	require.NoError(t, err)
	require.True(t, ok)

	// Logging out again still reports success.
	ok, err = client.Logout(t.Context(), pair.AccessToken)
	require.NoError(t, err)
	require.True(t, ok)

	// The refresh token issued before logout is gone for good.
	_, err = client.RefreshToken(t.Context(), pair.RefreshToken)
	requireAPIError(t, err, http.StatusForbidden, apisdk.ErrorCodeAccessDenied)

	// The access token keeps working until it expires; logout only revokes
	// the refresh chain.
	profile, err := client.Me(t.Context(), pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "Dave", profile.Name)

	// A fresh login restores the session.
	loginPair, err := client.Login(t.Context(), "dave@example.com", "pw12345")
	require.NoError(t, err)
	_, err = client.RefreshToken(t.Context(), loginPair.RefreshToken)
	require.NoError(t, err)
}
