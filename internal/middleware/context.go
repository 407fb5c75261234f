package middleware

import (
	"context"

	"github.com/gatekit/gatekit/internal/pipeline"
)

// claimsKey is the extension/context key under which Auth stores decoded
// claims. A dedicated struct type prevents collisions with other packages.
type claimsKey struct{}

// traceIDKey is the extension/context key under which TraceID stores the
// request's trace identifier.
type traceIDKey struct{}

// ClaimsFrom returns the decoded claims Auth attached to the request, if
// any. C is the pointer form of the application claims type, e.g.
// *models.UserClaims.
func ClaimsFrom[C any](req *pipeline.Request) (C, bool) {
	v, ok := req.Extension(claimsKey{})
	if !ok {
		var zero C
		return zero, false
	}

	c, ok := v.(C)

	return c, ok
}

// ClaimsFromContext returns the decoded claims from a terminal handler's
// request context. The pipeline's HTTP adapter copies request extensions
// into the context before invoking the handler.
func ClaimsFromContext[C any](ctx context.Context) (C, bool) {
	c, ok := ctx.Value(claimsKey{}).(C)

	return c, ok
}

// TraceIDFromContext returns the trace identifier attached by the TraceID
// layer, or the empty string.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)

	return id
}
