package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret is returned when a signer or verifier is constructed without a
// signing secret. This is a configuration fault and should abort startup.
var ErrNoSecret = errors.New("jwtx: signing secret is empty")

// Signer signs claims into a compact JWT.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

type hs256Signer struct {
	secret []byte
}

// NewSignerHS256 creates an HMAC-SHA256 signer. The secret must be non-empty;
// access and refresh tokens each get their own signer with a distinct secret.
func NewSignerHS256(secret string) (Signer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &hs256Signer{secret: []byte(secret)}, nil
}

func (s *hs256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (s *hs256Signer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
