package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity holds the claims the client reads from an access token
type Identity struct {
	Email     string
	Name      string
	ExpiresAt time.Time
}

// ParseIdentity decodes the claims of an access token. The signature is not
// verified: the client has no key and only uses the claims for display and expiry.
func ParseIdentity(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}

	var identity Identity
	if sub, err := claims.GetSubject(); err == nil {
		identity.Email = sub
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
	}
	return identity, nil
}

// Expired reports whether the identity carries an expiry that has passed.
// A token without an exp claim never expires client-side.
func (i Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}
