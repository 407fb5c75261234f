package pipeline

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

// tagLayer appends its tag to trace on the way in and out, so tests can
// observe the execution order of a composed chain.
func tagLayer(tag string, trace *[]string) Layer {
	return LayerFunc(func(next Service) Service {
		return ServiceFunc(func(ctx context.Context, req *Request) (*Response, error) {
			*trace = append(*trace, tag+":in")
			resp, err := next.Call(ctx, req)
			*trace = append(*trace, tag+":out")
			return resp, err
		})
	})
}

func okTerminal(trace *[]string) Service {
	return ServiceFunc(func(ctx context.Context, req *Request) (*Response, error) {
		if trace != nil {
			*trace = append(*trace, "terminal")
		}
		return NewResponse(http.StatusOK), nil
	})
}

// ---- Build ----

// TestBuild_OrderOutermostFirst verifies that the first listed layer is the
// outermost: it runs first on the way in and last on the way out.
func TestBuild_OrderOutermostFirst(t *testing.T) {
	var trace []string

	svc := Build(okTerminal(&trace),
		tagLayer("outer", &trace),
		tagLayer("middle", &trace),
		tagLayer("inner", &trace),
	)

	resp, err := svc.Call(context.Background(), NewRequest(http.MethodGet, "/"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	want := []string{
		"outer:in", "middle:in", "inner:in",
		"terminal",
		"inner:out", "middle:out", "outer:out",
	}
	assert.Equal(t, want, trace)
}

// TestBuild_NoLayers verifies that Build with no layers returns the terminal
// unchanged.
func TestBuild_NoLayers(t *testing.T) {
	var trace []string
	svc := Build(okTerminal(&trace))

	resp, err := svc.Call(context.Background(), NewRequest(http.MethodGet, "/"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, []string{"terminal"}, trace)
}

// TestBuild_ShortCircuit verifies that a layer returning its own response
// prevents every inner layer and the terminal from running.
func TestBuild_ShortCircuit(t *testing.T) {
	var trace []string

	shortCircuit := LayerFunc(func(next Service) Service {
		return ServiceFunc(func(ctx context.Context, req *Request) (*Response, error) {
			return NewResponse(http.StatusForbidden), nil
		})
	})

	svc := Build(okTerminal(&trace),
		tagLayer("outer", &trace),
		shortCircuit,
		tagLayer("inner", &trace),
	)

	resp, err := svc.Call(context.Background(), NewRequest(http.MethodGet, "/"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.Status)
	assert.Equal(t, []string{"outer:in", "outer:out"}, trace)
}

// TestBuild_ErrorPropagatesUntouched verifies that an error from the terminal
// reaches the caller unchanged through pass-through layers.
func TestBuild_ErrorPropagatesUntouched(t *testing.T) {
	wantErr := errors.New("boom")
	terminal := ServiceFunc(func(ctx context.Context, req *Request) (*Response, error) {
		return nil, wantErr
	})

	var trace []string
	svc := Build(terminal, tagLayer("outer", &trace))

	resp, err := svc.Call(context.Background(), NewRequest(http.MethodGet, "/"))
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, wantErr)
}

// ---- Ready ----

type notReadyService struct {
	err error
}

func (s *notReadyService) Ready(ctx context.Context) error { return s.err }
func (s *notReadyService) Call(ctx context.Context, req *Request) (*Response, error) {
	return NewResponse(http.StatusOK), nil
}

// readinessLayer delegates Ready to the wrapped service, the way real
// middlewares do.
type readinessLayer struct{}

func (readinessLayer) Wrap(next Service) Service { return &readinessService{next: next} }

type readinessService struct{ next Service }

func (s *readinessService) Ready(ctx context.Context) error { return s.next.Ready(ctx) }
func (s *readinessService) Call(ctx context.Context, req *Request) (*Response, error) {
	return s.next.Call(ctx, req)
}

// TestBuild_ReadyPropagatesFromInner verifies that saturation of the terminal
// is visible through the outer layers' Ready.
func TestBuild_ReadyPropagatesFromInner(t *testing.T) {
	wantErr := errors.New("saturated")
	svc := Build(&notReadyService{err: wantErr}, readinessLayer{}, readinessLayer{})

	assert.ErrorIs(t, svc.Ready(context.Background()), wantErr)
}

// TestServiceFunc_AlwaysReady verifies that a ServiceFunc reports readiness
// unconditionally.
func TestServiceFunc_AlwaysReady(t *testing.T) {
	f := ServiceFunc(func(ctx context.Context, req *Request) (*Response, error) {
		return nil, nil
	})

	assert.NoError(t, f.Ready(context.Background()))
}

// ---- Request extensions ----

type testKey struct{}

// TestRequest_Extensions verifies the extension bag's set/get behaviour and
// its projection onto a context.
func TestRequest_Extensions(t *testing.T) {
	req := NewRequest(http.MethodGet, "/")

	_, ok := req.Extension(testKey{})
	assert.False(t, ok)

	req.SetExtension(testKey{}, "value")

	v, ok := req.Extension(testKey{})
	require.True(t, ok)
	assert.Equal(t, "value", v)

	ctx := req.ExtensionsContext(context.Background())
	assert.Equal(t, "value", ctx.Value(testKey{}))
}

// ---- Response ----

// TestJSON verifies that JSON sets the content type and serializes the value.
func TestJSON(t *testing.T) {
	resp := JSON(http.StatusTeapot, map[string]int{"a": 1})

	assert.Equal(t, http.StatusTeapot, resp.Status)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"a":1}`, string(resp.Body))
}

// TestJSON_UnserializableValue verifies the degradation to a plain 500 when
// the value cannot be marshaled.
func TestJSON_UnserializableValue(t *testing.T) {
	resp := JSON(http.StatusOK, func() {})

	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), string(resp.Body))
}
