package middleware

import (
	"context"
	"slices"

	"github.com/gatekit/gatekit/internal/pipeline"
	"github.com/gatekit/gatekit/models"
)

// BeforeHook runs before the inner service. Returning a non-nil Response
// short-circuits the request: the inner service and the after hook are never
// invoked. Hooks are pure functions over (store, request), so policies can
// be unit-tested without building a pipeline.
type BeforeHook[T any] func(store T, req *pipeline.Request) *pipeline.Response

// AfterHook runs after the inner service completed. It may mutate the
// response (for example add headers) but must not change its status
// category.
type AfterHook[T any] func(store T, resp *pipeline.Response)

// Interceptor is a generic before/after hook pair over a shared immutable
// store. The store is created once at pipeline-build time, is read-only for
// the pipeline's lifetime, and is shared across concurrently executing
// requests without locking.
type Interceptor[T any] struct {
	store  T
	before BeforeHook[T]
	after  AfterHook[T]
}

// NewInterceptor builds an Interceptor layer. Either hook may be nil.
func NewInterceptor[T any](store T, before BeforeHook[T], after AfterHook[T]) *Interceptor[T] {
	return &Interceptor[T]{
		store:  store,
		before: before,
		after:  after,
	}
}

// Wrap implements pipeline.Layer.
func (i *Interceptor[T]) Wrap(next pipeline.Service) pipeline.Service {
	return &interceptorService[T]{next: next, layer: i}
}

type interceptorService[T any] struct {
	next  pipeline.Service
	layer *Interceptor[T]
}

func (s *interceptorService[T]) Ready(ctx context.Context) error {
	return s.next.Ready(ctx)
}

func (s *interceptorService[T]) Call(ctx context.Context, req *pipeline.Request) (*pipeline.Response, error) {
	if s.layer.before != nil {
		if resp := s.layer.before(s.layer.store, req); resp != nil {
			return resp, nil
		}
	}

	resp, err := s.next.Call(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.layer.after != nil {
		s.layer.after(s.layer.store, resp)
	}

	return resp, nil
}

// Denylist builds the IP-denylist interceptor: requests whose peer address
// matches any of addrs are rejected with a 403 envelope before the inner
// service runs. A request without a peer address passes through; the access
// logger treats that as a wiring defect separately.
func Denylist(addrs ...string) *Interceptor[[]string] {
	return NewInterceptor(addrs, func(store []string, req *pipeline.Request) *pipeline.Response {
		peer, ok := req.Peer()
		if !ok {
			return nil
		}

		if slices.Contains(store, peer.Addr().String()) {
			env := models.Reject("")
			return pipeline.JSON(env.Code, env)
		}

		return nil
	}, nil)
}
