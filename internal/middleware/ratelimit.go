package middleware

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/gatekit/gatekit/internal/pipeline"
	"github.com/gatekit/gatekit/models"
)

// RateLimit throttles the pipeline with a token bucket. A request that
// cannot obtain a token is refused with a 429 envelope, and Ready reports
// saturation so outer layers see backpressure before accepting new work.
type RateLimit struct {
	limiter *rate.Limiter
}

// NewRateLimit builds the layer admitting r requests per second with the
// given burst.
func NewRateLimit(r float64, burst int) *RateLimit {
	return &RateLimit{limiter: rate.NewLimiter(rate.Limit(r), burst)}
}

// Wrap implements pipeline.Layer.
func (r *RateLimit) Wrap(next pipeline.Service) pipeline.Service {
	return &rateLimitService{next: next, limiter: r.limiter}
}

type rateLimitService struct {
	next    pipeline.Service
	limiter *rate.Limiter
}

// Ready reports saturation without consuming a token.
func (s *rateLimitService) Ready(ctx context.Context) error {
	if s.limiter.Tokens() < 1 {
		return ErrRateLimited
	}

	return s.next.Ready(ctx)
}

func (s *rateLimitService) Call(ctx context.Context, req *pipeline.Request) (*pipeline.Response, error) {
	if !s.limiter.Allow() {
		env := models.Failed(http.StatusTooManyRequests, "rate limit exceeded")
		return pipeline.JSON(env.Code, env), nil
	}

	return s.next.Call(ctx, req)
}
