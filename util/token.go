package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims are the claims the cli cares about in an access token.
type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// parseUnverified parses the token without checking the signature.
// The Python API is the one verifying it, the cli only reads claims.
func parseUnverified(tokenStr string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(tokenStr, claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// IsTokenExpired verifies if the given token is still valid or not.
// Tokens without an expiration never expire.
func IsTokenExpired(tokenStr string) (bool, error) {
	claims, err := parseUnverified(tokenStr)
	if err != nil {
		return true, err
	}
	expirationTime, err := claims.GetExpirationTime()
	if err != nil {
		return true, err
	}
	if expirationTime == nil {
		return false, nil
	}
	return time.Now().After(expirationTime.Time), nil
}

// TokenExpiration returns the expiration time of the token, zero if it has none.
func TokenExpiration(tokenStr string) (time.Time, error) {
	claims, err := parseUnverified(tokenStr)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// TokenSubject returns the "sub" claim, which is the user id.
func TokenSubject(tokenStr string) (string, error) {
	claims, err := parseUnverified(tokenStr)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("Token has no subject.")
	}
	return claims.Subject, nil
}

// TokenEmail returns the "email" claim if present.
func TokenEmail(tokenStr string) string {
	claims, err := parseUnverified(tokenStr)
	if err != nil {
		return ""
	}
	return claims.Email
}
