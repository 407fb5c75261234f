package pipeline

import "context"

// Service is the unit of middleware composition: anything that can turn a
// Request into a Response. A Service may suspend while awaiting its inner
// Service but must never mutate the Request concurrently: within one call
// the Request is borrowed by exactly one layer at a time.
type Service interface {
	// Ready reports whether the Service can accept a new Request.
	// Wrapping services must consult their inner Service so that saturation
	// deep in the chain propagates outward.
	Ready(ctx context.Context) error

	// Call processes one Request and produces a Response, or propagates an
	// error from an inner layer untouched.
	Call(ctx context.Context, req *Request) (*Response, error)
}

// ServiceFunc adapts a plain function to the Service interface.
// Its Ready always reports readiness, which suits terminal handlers without
// a saturable resource behind them.
type ServiceFunc func(ctx context.Context, req *Request) (*Response, error)

// Ready implements Service. It always returns nil.
func (f ServiceFunc) Ready(ctx context.Context) error { return nil }

// Call implements Service by invoking f.
func (f ServiceFunc) Call(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// Layer is a factory that wraps one Service to produce another.
type Layer interface {
	Wrap(next Service) Service
}

// LayerFunc adapts a plain function to the Layer interface.
type LayerFunc func(next Service) Service

// Wrap implements Layer by invoking f.
func (f LayerFunc) Wrap(next Service) Service { return f(next) }

// Build composes layers around terminal and returns the resulting Service.
// Layers are listed outermost-first:
//
//	Build(h, accessLog, denylist, auth)
//
// executes accessLog → denylist → auth → h on the way in and unwinds in
// reverse on the way out. The order is fixed for the lifetime of the
// returned Service.
func Build(terminal Service, layers ...Layer) Service {
	svc := terminal
	for i := len(layers) - 1; i >= 0; i-- {
		svc = layers[i].Wrap(svc)
	}

	return svc
}
