package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gatekit/gatekit/internal/logger"
	"github.com/gatekit/gatekit/internal/pipeline"
)

// TraceIDHeader carries the trace identifier on both requests and responses.
const TraceIDHeader = "X-Trace-ID"

// TraceID propagates a per-request trace identifier: an inbound X-Trace-ID
// header is honoured, otherwise a fresh UUID is generated. The identifier is
// stored in the request extensions, mirrored on the response header, and
// stamped onto the request-scoped zerolog logger carried in the context.
type TraceID struct {
	log *logger.Logger
}

// NewTraceID builds the layer. Request-scoped child loggers derive from log.
func NewTraceID(log *logger.Logger) *TraceID {
	return &TraceID{log: log}
}

// Wrap implements pipeline.Layer.
func (t *TraceID) Wrap(next pipeline.Service) pipeline.Service {
	return &traceService{next: next, layer: t}
}

type traceService struct {
	next  pipeline.Service
	layer *TraceID
}

func (s *traceService) Ready(ctx context.Context) error {
	return s.next.Ready(ctx)
}

func (s *traceService) Call(ctx context.Context, req *pipeline.Request) (*pipeline.Response, error) {
	traceID := req.Header.Get(TraceIDHeader)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	req.SetExtension(traceIDKey{}, traceID)

	l := s.layer.log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	resp, err := s.next.Call(l.WithContext(ctx), req)
	if err != nil {
		return nil, err
	}

	resp.Header.Set(TraceIDHeader, traceID)

	return resp, nil
}
