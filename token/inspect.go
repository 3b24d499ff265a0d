// Package token decodes bearer tokens for display purposes. The backend's
// tokens are JWTs, but the client never holds the signing key: everything
// here is an unverified parse and must not drive authorization decisions.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Claims is the advisory view of a token's payload.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Expired reports whether the token carries an expiry in the past. Tokens
// without an expiry claim are never considered expired.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// Inspect decodes raw without verifying its signature.
func Inspect(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, errors.Wrap(err, "[token.Inspect] parse token")
	}

	out := &Claims{}
	if subject, err := claims.GetSubject(); err == nil {
		out.Subject = subject
	}
	if expiry, err := claims.GetExpirationTime(); err == nil && expiry != nil {
		out.ExpiresAt = expiry.Time
	}
	if issued, err := claims.GetIssuedAt(); err == nil && issued != nil {
		out.IssuedAt = issued.Time
	}
	return out, nil
}
