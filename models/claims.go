package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the application claims payload embedded in issued tokens.
//
// It embeds [jwt.RegisteredClaims] so the standard claim set (exp, iat, iss,
// sub) is available to the token codec; the expiration claim is mandatory and
// is validated on every decode.
type UserClaims struct {
	jwt.RegisteredClaims

	// User is the authenticated account the token was issued for.
	User User `json:"user"`
}

// NewUserClaims builds claims for user expiring at the given instant.
// Callers typically obtain expiresAt from the codec's Expiration method.
func NewUserClaims(user User, expiresAt time.Time) UserClaims {
	return UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		User: user,
	}
}
