package pipeline

import (
	"context"
	"io"
	"net/http"
	"net/netip"
)

// Request is the inbound message flowing through the pipeline. It is owned by
// the pipeline for the duration of one call; middlewares borrow it mutably in
// sequence, never concurrently.
type Request struct {
	// Method is the HTTP method of the request (GET, POST, ...).
	Method string

	// Path is the URL path of the request, e.g. "/login".
	Path string

	// Header holds the request headers.
	Header http.Header

	// Body is the request body stream. May be nil for bodyless requests.
	Body io.ReadCloser

	peer    netip.AddrPort
	hasPeer bool

	ext map[any]any
}

// NewRequest builds an empty Request for the given method and path.
func NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Header: make(http.Header),
	}
}

// SetPeer attaches the network address of the calling peer. The transport
// adapter sets it before the request enters the pipeline; middlewares such as
// the access logger and the IP denylist depend on its presence.
func (r *Request) SetPeer(addr netip.AddrPort) {
	r.peer = addr
	r.hasPeer = true
}

// Peer returns the peer address attached by the transport layer and whether
// one was attached at all.
func (r *Request) Peer() (netip.AddrPort, bool) {
	return r.peer, r.hasPeer
}

// SetExtension stores a value in the request's extension bag under key.
// Keys follow the context.Context convention: use an unexported struct type
// to avoid collisions between packages. Values set here are visible to every
// layer downstream of the caller and are scoped to this request only.
func (r *Request) SetExtension(key, value any) {
	if r.ext == nil {
		r.ext = make(map[any]any)
	}
	r.ext[key] = value
}

// Extension returns the value stored under key and whether it was present.
func (r *Request) Extension(key any) (any, bool) {
	v, ok := r.ext[key]
	return v, ok
}

// ExtensionsContext returns ctx enriched with every entry of the request's
// extension bag, so terminal net/http handlers can read pipeline extensions
// through the ordinary context.Value mechanism.
func (r *Request) ExtensionsContext(ctx context.Context) context.Context {
	for k, v := range r.ext {
		ctx = context.WithValue(ctx, k, v)
	}

	return ctx
}
