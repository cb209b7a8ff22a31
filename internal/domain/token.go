package domain

// TokenPair is what a successful signup, signin or refresh returns. It is
// never persisted; only an argon2 hash of the refresh token is stored.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
