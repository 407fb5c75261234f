package pipeline

import (
	"context"
	"net/http"
	"net/netip"

	"github.com/gatekit/gatekit/models"
)

// FromHTTP builds a pipeline Request from an inbound *http.Request.
// The peer address is parsed from RemoteAddr; a RemoteAddr that is not a
// valid host:port (possible with exotic listeners) leaves the request
// without a peer, which downstream middlewares treat as a wiring defect.
func FromHTTP(r *http.Request) *Request {
	req := &Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header,
		Body:   r.Body,
	}

	if addr, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		req.SetPeer(addr)
	}

	return req
}

// HTTPHandler exposes a composed Service as an http.Handler.
//
// Before each request it consults svc.Ready; a not-ready chain is refused
// with a 503 envelope without entering the pipeline. Errors propagated out
// of the pipeline are converted to a 500 envelope; middlewares have already
// turned every expected rejection into a Response by that point.
func HTTPHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := svc.Ready(ctx); err != nil {
			writeResponse(w, JSON(http.StatusServiceUnavailable, models.Failed(http.StatusServiceUnavailable, "service not ready")))
			return
		}

		resp, err := svc.Call(ctx, FromHTTP(r))
		if err != nil {
			writeResponse(w, JSON(http.StatusInternalServerError, models.InternalError("")))
			return
		}

		writeResponse(w, resp)
	})
}

// WrapHandler turns any http.Handler (typically a chi mux) into a terminal
// Service. The handler runs against an in-memory recorder; its output is
// converted into a pipeline Response and handed back up the chain.
//
// Extensions attached to the Request (decoded claims, trace IDs) are copied
// into the reconstructed request's context so ordinary handlers can read
// them with context.Value.
func WrapHandler(h http.Handler) Service {
	return ServiceFunc(func(ctx context.Context, req *Request) (*Response, error) {
		httpReq, err := http.NewRequestWithContext(req.ExtensionsContext(ctx), req.Method, req.Path, req.Body)
		if err != nil {
			return JSON(http.StatusInternalServerError, models.InternalError("")), nil
		}
		httpReq.Header = req.Header
		httpReq.RequestURI = req.Path
		if peer, ok := req.Peer(); ok {
			httpReq.RemoteAddr = peer.String()
		}

		rec := newRecorder()
		h.ServeHTTP(rec, httpReq)

		return rec.response(), nil
	})
}

// recorder is an in-memory http.ResponseWriter used by WrapHandler to capture
// the terminal handler's output as a pipeline Response.
//
// It forwards the WriteHeader-once discipline of net/http: the first
// WriteHeader wins and later calls are silently ignored; a Write without a
// prior WriteHeader implies 200, matching the standard library's behaviour.
type recorder struct {
	status      int
	wroteHeader bool
	header      http.Header
	body        []byte
}

func newRecorder() *recorder {
	return &recorder{header: make(http.Header)}
}

func (r *recorder) Header() http.Header {
	return r.header
}

func (r *recorder) WriteHeader(statusCode int) {
	if r.wroteHeader {
		return
	}
	r.status = statusCode
	r.wroteHeader = true
}

func (r *recorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	r.body = append(r.body, b...)

	return len(b), nil
}

// response snapshots the recorded output as a pipeline Response.
func (r *recorder) response() *Response {
	if !r.wroteHeader {
		r.status = http.StatusOK
	}

	return &Response{
		Status: r.status,
		Header: r.header,
		Body:   r.body,
	}
}

// writeResponse flushes a pipeline Response to the underlying writer:
// headers first, then the status line, then the body.
func writeResponse(w http.ResponseWriter, resp *Response) {
	for key, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}
