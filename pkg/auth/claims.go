package auth

import "github.com/golang-jwt/jwt/v5"

// SessionClaims identifies an anonymous browsing session.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
