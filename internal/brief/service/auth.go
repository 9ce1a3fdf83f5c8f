package service

import (
	"crypto/subtle"
	"strings"
)

const bearerPrefix = "Bearer "

// Authenticator decides whether a job trigger carries the shared secret.
type Authenticator interface {
	Authorize(authorization, querySecret string) bool
}

// NewAuthenticator creates an Authenticator for secret. An empty secret authorizes nothing.
func NewAuthenticator(secret string) Authenticator {
	return &secretAuthenticator{secret: secret}
}

type secretAuthenticator struct {
	secret string
}

// Authorize accepts "Bearer <secret>" in the Authorization header, or the secret as the
// (whitespace-trimmed) secret query parameter.
func (a *secretAuthenticator) Authorize(authorization, querySecret string) bool {
	if a.secret == "" {
		return false
	}

	headerOK := equal(authorization, bearerPrefix+a.secret)
	queryOK := equal(strings.TrimSpace(querySecret), a.secret)
	return headerOK || queryOK
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
