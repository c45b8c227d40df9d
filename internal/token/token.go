// Package token issues and verifies the signed session tokens that replace
// server-side session storage. A token is an HS256-signed claims structure
// with an embedded expiry; the server keeps no record of issued tokens.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the session lifetime: one year from issuance.
const DefaultTTL = 365 * 24 * time.Hour

// ErrInvalid is returned for every verification failure. Tampered, malformed
// and expired tokens are deliberately indistinguishable to callers.
var ErrInvalid = errors.New("invalid session token")

// Claims is the identity data embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserKeyHash   string `json:"userKeyHash"`
	Username      string `json:"username"`
	IsAdmin       bool   `json:"isAdmin"`
	SheetURL      string `json:"sheetUrl,omitempty"`
	EditPlanSheet string `json:"editPlanSheet,omitempty"`
}

// Issue signs claims with secret, setting the expiry to now + ttl.
func Issue(claims Claims, secret []byte, ttl time.Duration) (string, error) {
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

// Verify validates the signature and expiry of tokenString and returns the
// embedded claims. Any failure is reported as ErrInvalid.
func Verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
