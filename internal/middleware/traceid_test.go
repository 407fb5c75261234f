package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/internal/logger"
	"github.com/gatekit/gatekit/internal/pipeline"
)

// TestTraceID_TableTest verifies reuse of an inbound trace ID and generation
// of a fresh UUID when absent.
func TestTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		wantSameID     bool
		wantValidUUID  bool
	}{
		{
			name:           "trace ID from request header is reused",
			requestTraceID: "my-custom-trace-id",
			wantSameID:     true,
		},
		{
			name:           "no trace ID in request generates UUID",
			requestTraceID: "",
			wantValidUUID:  true,
		},
		{
			name:           "UUID v4 string as incoming trace ID",
			requestTraceID: "550e8400-e29b-41d4-a716-446655440000",
			wantSameID:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var idInExtensions string
			inner := pipeline.ServiceFunc(func(ctx context.Context, req *pipeline.Request) (*pipeline.Response, error) {
				idInExtensions = TraceIDFromContext(req.ExtensionsContext(ctx))
				return pipeline.NewResponse(http.StatusOK), nil
			})

			svc := NewTraceID(logger.Nop()).Wrap(inner)

			req := pipeline.NewRequest(http.MethodGet, "/index")
			if tt.requestTraceID != "" {
				req.Header.Set(TraceIDHeader, tt.requestTraceID)
			}

			resp, err := svc.Call(context.Background(), req)
			require.NoError(t, err)

			gotID := resp.Header.Get(TraceIDHeader)
			require.NotEmpty(t, gotID)
			assert.Equal(t, gotID, idInExtensions)

			if tt.wantSameID {
				assert.Equal(t, tt.requestTraceID, gotID)
			}
			if tt.wantValidUUID {
				_, parseErr := uuid.Parse(gotID)
				assert.NoError(t, parseErr)
			}
		})
	}
}

// TestTraceID_DistinctPerRequest verifies that generated IDs differ between
// requests.
func TestTraceID_DistinctPerRequest(t *testing.T) {
	svc := NewTraceID(logger.Nop()).Wrap(&countingService{})

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		resp, err := svc.Call(context.Background(), pipeline.NewRequest(http.MethodGet, "/"))
		require.NoError(t, err)
		seen[resp.Header.Get(TraceIDHeader)] = true
	}

	assert.Len(t, seen, 5)
}
