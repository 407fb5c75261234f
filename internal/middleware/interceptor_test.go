package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/internal/pipeline"
	"github.com/gatekit/gatekit/models"
)

// ---- Helpers ----

// countingService is a terminal that records how many times it was invoked.
type countingService struct {
	calls int
	resp  *pipeline.Response
}

func (s *countingService) Ready(ctx context.Context) error { return nil }
func (s *countingService) Call(ctx context.Context, req *pipeline.Request) (*pipeline.Response, error) {
	s.calls++
	if s.resp != nil {
		return s.resp, nil
	}
	return pipeline.NewResponse(http.StatusOK), nil
}

func requestFrom(ip string) *pipeline.Request {
	req := pipeline.NewRequest(http.MethodGet, "/index")
	if ip != "" {
		req.SetPeer(netip.MustParseAddrPort(ip + ":50000"))
	}
	return req
}

func decodeEnvelope(t *testing.T, resp *pipeline.Response) models.Envelope {
	t.Helper()
	var env models.Envelope
	require.NoError(t, json.Unmarshal(resp.Body, &env))
	return env
}

// ---- Interceptor ----

// TestInterceptor_BeforeShortCircuits verifies that a before hook returning a
// response prevents the inner service and the after hook from running.
func TestInterceptor_BeforeShortCircuits(t *testing.T) {
	inner := &countingService{}
	afterRan := false

	layer := NewInterceptor("store",
		func(store string, req *pipeline.Request) *pipeline.Response {
			return pipeline.NewResponse(http.StatusForbidden)
		},
		func(store string, resp *pipeline.Response) {
			afterRan = true
		},
	)

	resp, err := layer.Wrap(inner).Call(context.Background(), requestFrom("10.0.0.1"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.Status)
	assert.Zero(t, inner.calls)
	assert.False(t, afterRan)
}

// TestInterceptor_AfterMutatesResponse verifies that the after hook observes
// and can modify the inner service's response.
func TestInterceptor_AfterMutatesResponse(t *testing.T) {
	inner := &countingService{}

	layer := NewInterceptor("v1", nil,
		func(store string, resp *pipeline.Response) {
			resp.Header.Set("X-Store", store)
		},
	)

	resp, err := layer.Wrap(inner).Call(context.Background(), requestFrom("10.0.0.1"))
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, "v1", resp.Header.Get("X-Store"))
}

// TestInterceptor_NilHooksPassThrough verifies that an interceptor without
// hooks is transparent.
func TestInterceptor_NilHooksPassThrough(t *testing.T) {
	inner := &countingService{}
	layer := NewInterceptor(struct{}{}, nil, nil)

	resp, err := layer.Wrap(inner).Call(context.Background(), requestFrom("10.0.0.1"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, 1, inner.calls)
}

// TestInterceptor_StoreSharedAcrossCalls verifies that every invocation sees
// the same store value.
func TestInterceptor_StoreSharedAcrossCalls(t *testing.T) {
	inner := &countingService{}
	var seen []int

	layer := NewInterceptor(7,
		func(store int, req *pipeline.Request) *pipeline.Response {
			seen = append(seen, store)
			return nil
		}, nil)

	svc := layer.Wrap(inner)
	for i := 0; i < 3; i++ {
		_, err := svc.Call(context.Background(), requestFrom("10.0.0.1"))
		require.NoError(t, err)
	}

	assert.Equal(t, []int{7, 7, 7}, seen)
}

// ---- Denylist ----

// TestDenylist_TableTest verifies the rejection decision per peer address.
func TestDenylist_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		denylist   []string
		peerIP     string
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "denylisted peer is rejected",
			denylist:   []string{"10.0.0.1", "10.0.0.2"},
			peerIP:     "10.0.0.2",
			wantStatus: http.StatusForbidden,
			wantCalls:  0,
		},
		{
			name:       "unlisted peer passes",
			denylist:   []string{"10.0.0.1"},
			peerIP:     "192.168.1.7",
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "empty denylist passes everyone",
			denylist:   nil,
			peerIP:     "10.0.0.1",
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "request without peer passes",
			denylist:   []string{"10.0.0.1"},
			peerIP:     "",
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &countingService{}
			svc := Denylist(tt.denylist...).Wrap(inner)

			resp, err := svc.Call(context.Background(), requestFrom(tt.peerIP))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantCalls, inner.calls)
		})
	}
}

// TestDenylist_RejectionEnvelope verifies the 403 envelope body.
func TestDenylist_RejectionEnvelope(t *testing.T) {
	svc := Denylist("10.0.0.1").Wrap(&countingService{})

	resp, err := svc.Call(context.Background(), requestFrom("10.0.0.1"))
	require.NoError(t, err)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, http.StatusForbidden, env.Code)
	assert.Equal(t, "access denied", env.Msg)
}
