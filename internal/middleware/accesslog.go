package middleware

import (
	"context"
	"time"

	"github.com/gatekit/gatekit/internal/logger"
	"github.com/gatekit/gatekit/internal/logsink"
	"github.com/gatekit/gatekit/internal/pipeline"
)

// DefaultAccessTag is the line prefix used when no tag is configured.
const DefaultAccessTag = "[GATE]"

// DefaultAccessLogConfig returns the stock access-log sink configuration:
// console output on, file output off, one rotating access file under dir.
func DefaultAccessLogConfig(dir string) logsink.Config {
	return logsink.Config{
		Console: true,
		Templates: map[logsink.Channel]string{
			logsink.ChannelAccess: dir + "/access/2006-01-02.log",
		},
	}
}

// AccessLogger is the per-request timing/metadata capture layer. It owns its
// own Sink instance, independent of the process-wide leveled logger, and
// emits exactly one AccessRecord per completed request, including requests
// short-circuited by inner layers, since their responses still travel back
// through this layer.
type AccessLogger struct {
	sink *logsink.Sink
	tag  string
	diag *logger.Logger
}

// NewAccessLogger constructs the layer together with its sink. An empty tag
// falls back to DefaultAccessTag. diag receives the sink's fatal start-up
// failures and the fatal report for requests arriving without a peer
// address.
func NewAccessLogger(cfg logsink.Config, tag string, diag *logger.Logger) *AccessLogger {
	if tag == "" {
		tag = DefaultAccessTag
	}

	return &AccessLogger{
		sink: logsink.New(cfg, diag),
		tag:  tag,
		diag: diag,
	}
}

// Configure replaces the sink configuration; see logsink.Sink.Configure.
func (a *AccessLogger) Configure(cfg logsink.Config) { a.sink.Configure(cfg) }

// Close drains and stops the layer's sink.
func (a *AccessLogger) Close() { a.sink.Close() }

// Wrap implements pipeline.Layer.
func (a *AccessLogger) Wrap(next pipeline.Service) pipeline.Service {
	return &accessService{next: next, layer: a}
}

type accessService struct {
	next  pipeline.Service
	layer *AccessLogger
}

func (s *accessService) Ready(ctx context.Context) error {
	return s.next.Ready(ctx)
}

func (s *accessService) Call(ctx context.Context, req *pipeline.Request) (*pipeline.Response, error) {
	peer, ok := req.Peer()
	if !ok {
		// A missing peer address means the transport adapter was wired
		// incorrectly, not that the request is bad. Refusing to continue is
		// intentional.
		s.layer.diag.Fatal().
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("access logger requires a peer address on the request")
	}

	begin := time.Now()
	method := req.Method
	path := req.Path

	resp, err := s.next.Call(ctx, req)
	if err != nil {
		return nil, err
	}

	s.layer.sink.Emit(&logsink.AccessRecord{
		Tag:    s.layer.tag,
		Begin:  begin,
		End:    time.Now(),
		Status: resp.Status,
		IP:     peer.Addr().String(),
		Method: method,
		Path:   path,
	})

	return resp, nil
}
