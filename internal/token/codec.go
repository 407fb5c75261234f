// Package token implements the stateless signed-claims codec used by the
// auth middleware. Claims are application-defined structs embedding
// jwt.RegisteredClaims; every encoded payload must carry an expiration,
// which Decode enforces.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default codec parameters, used when the application does not override them.
// Production deployments must always supply their own secret.
const (
	DefaultSecret   = "my_key"
	DefaultDuration = 15 * 24 * time.Hour
)

// Claims constrains the pointer form of an application claims type.
// Embedding jwt.RegisteredClaims in the claims struct satisfies it.
type Claims[T any] interface {
	*T
	jwt.Claims
}

// Codec encodes and decodes one application claims type as a compact signed
// token string (header.payload.signature, HMAC-SHA256). A Codec is immutable
// after construction and safe for concurrent use.
type Codec[T any, P Claims[T]] struct {
	secret   []byte
	duration time.Duration
}

// Option overrides a codec parameter.
type Option func(*settings)

type settings struct {
	secret   string
	duration time.Duration
}

// WithSecret sets the HMAC signing secret for this claims type.
func WithSecret(secret string) Option {
	return func(s *settings) { s.secret = secret }
}

// WithDuration sets the validity window used by Expiration.
func WithDuration(d time.Duration) Option {
	return func(s *settings) { s.duration = d }
}

// NewCodec constructs a codec for the claims type T. Unset parameters fall
// back to DefaultSecret and DefaultDuration.
func NewCodec[T any, P Claims[T]](opts ...Option) *Codec[T, P] {
	s := settings{secret: DefaultSecret, duration: DefaultDuration}
	for _, opt := range opts {
		opt(&s)
	}

	return &Codec[T, P]{
		secret:   []byte(s.secret),
		duration: s.duration,
	}
}

// Encode serializes claims and signs them with the codec's secret, returning
// the compact token string. Fails only when signing the serialized claims
// fails, which a well-formed claims type does not trigger.
func (c *Codec[T, P]) Encode(claims P) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return signed, nil
}

// Decode verifies the token's signature against the codec's secret and its
// embedded expiration against the current time, then returns the decoded
// claims. Every failure mode (malformed token, wrong signature, missing or
// past expiration) is normalized to ErrInvalidToken so callers do not need
// to inspect low-level JWT errors.
func (c *Codec[T, P]) Decode(tokenString string) (P, error) {
	var claims T

	_, err := jwt.ParseWithClaims(tokenString, P(&claims), func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return P(&claims), nil
}

// Expiration returns the expiry instant for a claims value constructed now:
// the current time plus the codec's configured duration.
func (c *Codec[T, P]) Expiration() time.Time {
	return time.Now().Add(c.duration)
}
