package middleware

import (
	"context"
	"slices"
	"strings"

	"github.com/gatekit/gatekit/internal/pipeline"
	"github.com/gatekit/gatekit/internal/token"
	"github.com/gatekit/gatekit/models"
)

// decoder is the slice of the token codec the auth layer needs; tests swap
// in fakes without constructing a real codec.
type decoder[T any, P token.Claims[T]] interface {
	Decode(tokenString string) (P, error)
}

// Auth is the path-filtered bearer-token verification layer.
//
// Requests whose path is in the exemption list pass through untouched; the
// Authorization header is never inspected for them. For all other paths the
// bearer token is extracted, decoded via the codec, and the resulting claims
// are attached to the request's extensions for downstream handlers. Auth has
// no after stage; it never touches the response.
type Auth[T any, P token.Claims[T]] struct {
	filter []string
	codec  decoder[T, P]
}

// NewAuth builds an Auth layer over codec with the given exempt exact-match
// paths. The exemption list is immutable after construction and shared
// across concurrent requests.
func NewAuth[T any, P token.Claims[T]](codec *token.Codec[T, P], exempt ...string) *Auth[T, P] {
	return &Auth[T, P]{
		filter: exempt,
		codec:  codec,
	}
}

// Wrap implements pipeline.Layer.
func (a *Auth[T, P]) Wrap(next pipeline.Service) pipeline.Service {
	return &authService[T, P]{next: next, layer: a}
}

type authService[T any, P token.Claims[T]] struct {
	next  pipeline.Service
	layer *Auth[T, P]
}

func (s *authService[T, P]) Ready(ctx context.Context) error {
	return s.next.Ready(ctx)
}

func (s *authService[T, P]) Call(ctx context.Context, req *pipeline.Request) (*pipeline.Response, error) {
	if slices.Contains(s.layer.filter, req.Path) {
		return s.next.Call(ctx, req)
	}

	raw, ok := bearerToken(req.Header.Get("Authorization"))
	if !ok {
		env := models.AuthFailed("request missing token")
		return pipeline.JSON(env.Code, env), nil
	}

	claims, err := s.layer.codec.Decode(raw)
	if err != nil {
		env := models.AuthFailed(err.Error())
		return pipeline.JSON(env.Code, env), nil
	}

	req.SetExtension(claimsKey{}, claims)

	return s.next.Call(ctx, req)
}

// bearerToken extracts the token from an "Authorization: <scheme> <token>"
// header value. It reports false when the header is absent, has no token
// part, or carries an empty token.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(header), " ")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
