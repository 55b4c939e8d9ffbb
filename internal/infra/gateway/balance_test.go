//go:build unit

package gateway_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"leaveflow/internal/domain/integration"
	"leaveflow/internal/infra/gateway"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	endpoint *integration.Endpoint
}

func (r *stubResolver) FindActive(_ context.Context, _ integration.Type) (*integration.Endpoint, error) {
	return r.endpoint, nil
}

type recordingMonitor struct {
	mu       sync.Mutex
	failures []string
}

func (m *recordingMonitor) RecordDeductionFailure(requestID uuid.UUID, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, requestID.String()+": "+reason)
}

func (m *recordingMonitor) RecordEventFailure(string, int) {}

type sleepRecorder struct {
	delays []time.Duration
}

func (s *sleepRecorder) sleep(d time.Duration) {
	s.delays = append(s.delays, d)
}

func newTestClient(t *testing.T, serverURL string, monitor *recordingMonitor, sleeps *sleepRecorder) *gateway.Client {
	t.Helper()
	resolver := &stubResolver{}
	if serverURL != "" {
		resolver.endpoint = &integration.Endpoint{
			ID:          uuid.New(),
			Type:        integration.TypeVacationBalance,
			State:       integration.StateConfigured,
			EndpointURL: serverURL,
			AuthToken:   "test-token",
		}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gateway.NewClient(resolver, monitor, logger, gateway.WithSleep(sleeps.sleep))
}

func TestFetchBalance(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first attempt success sleeps never", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			assert.Equal(t, userID.String(), r.Header.Get("X-User-Id"))
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"balance": 12.5}`))
		}))
		defer server.Close()

		sleeps := &sleepRecorder{}
		client := newTestClient(t, server.URL, &recordingMonitor{}, sleeps)

		result := client.FetchBalance(ctx, userID)
		require.False(t, result.Unavailable)
		assert.Equal(t, "12.5", result.Official.String())
		assert.Equal(t, 1, requests)
		assert.Empty(t, sleeps.delays)
	})

	t.Run("transient failures are retried on the fixed schedule", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			if requests < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`{"balance": 8}`))
		}))
		defer server.Close()

		sleeps := &sleepRecorder{}
		client := newTestClient(t, server.URL, &recordingMonitor{}, sleeps)

		result := client.FetchBalance(ctx, userID)
		require.False(t, result.Unavailable)
		assert.Equal(t, "8", result.Official.String())
		assert.Equal(t, 3, requests)
		if diff := cmp.Diff([]time.Duration{1 * time.Second, 2 * time.Second}, sleeps.delays); diff != "" {
			t.Errorf("unexpected retry schedule (-want +got):\n%s", diff)
		}
	})

	t.Run("budget exhaustion yields unavailable after four attempts", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		sleeps := &sleepRecorder{}
		client := newTestClient(t, server.URL, &recordingMonitor{}, sleeps)

		result := client.FetchBalance(ctx, userID)
		require.True(t, result.Unavailable)
		assert.Contains(t, result.Reason, "External balance system unavailable")
		assert.Equal(t, 4, requests)
		if diff := cmp.Diff([]time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, sleeps.delays); diff != "" {
			t.Errorf("unexpected retry schedule (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed body counts against the budget", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			if requests == 1 {
				_, _ = w.Write([]byte(`{"unexpected": true}`))
				return
			}
			_, _ = w.Write([]byte(`{"balance": 3}`))
		}))
		defer server.Close()

		sleeps := &sleepRecorder{}
		client := newTestClient(t, server.URL, &recordingMonitor{}, sleeps)

		result := client.FetchBalance(ctx, userID)
		require.False(t, result.Unavailable)
		assert.Equal(t, "3", result.Official.String())
		assert.Equal(t, 2, requests)
	})

	t.Run("missing endpoint configuration short-circuits without a request", func(t *testing.T) {
		sleeps := &sleepRecorder{}
		client := newTestClient(t, "", &recordingMonitor{}, sleeps)

		result := client.FetchBalance(ctx, userID)
		require.True(t, result.Unavailable)
		assert.Equal(t, "Integration not configured", result.Reason)
		assert.Empty(t, sleeps.delays)
	})
}

func TestDeduct(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	userID := uuid.New()

	t.Run("empty success body deducts on the first attempt", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			assert.Equal(t, requestID.String(), r.Header.Get("Idempotency-Key"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		sleeps := &sleepRecorder{}
		client := newTestClient(t, server.URL, &recordingMonitor{}, sleeps)

		result := client.Deduct(ctx, requestID, userID, 3)
		assert.True(t, result.Success)
		assert.Equal(t, 1, requests)
		assert.Empty(t, sleeps.delays)
	})

	t.Run("every retry carries the same idempotency key", func(t *testing.T) {
		var keys []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			keys = append(keys, r.Header.Get("Idempotency-Key"))
			if len(keys) < 2 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"status": "ok"}`))
		}))
		defer server.Close()

		sleeps := &sleepRecorder{}
		client := newTestClient(t, server.URL, &recordingMonitor{}, sleeps)

		result := client.Deduct(ctx, requestID, userID, 3)
		assert.True(t, result.Success)
		require.Len(t, keys, 2)
		assert.Equal(t, requestID.String(), keys[0])
		assert.Equal(t, requestID.String(), keys[1])
		assert.Equal(t, []time.Duration{1 * time.Second}, sleeps.delays)
	})

	t.Run("exhaustion notifies the monitor exactly once", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		monitor := &recordingMonitor{}
		sleeps := &sleepRecorder{}
		client := newTestClient(t, server.URL, monitor, sleeps)

		result := client.Deduct(ctx, requestID, userID, 3)
		require.True(t, result.Unavailable)
		assert.False(t, result.Success)
		assert.Equal(t, 3, requests)
		if diff := cmp.Diff([]time.Duration{1 * time.Second, 2 * time.Second}, sleeps.delays); diff != "" {
			t.Errorf("unexpected retry schedule (-want +got):\n%s", diff)
		}
		require.Len(t, monitor.failures, 1)
		assert.Contains(t, monitor.failures[0], requestID.String())
	})

	t.Run("explicit rejection is final and never retried", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			_, _ = w.Write([]byte(`{"status": "rejected", "message": "insufficient balance"}`))
		}))
		defer server.Close()

		monitor := &recordingMonitor{}
		sleeps := &sleepRecorder{}
		client := newTestClient(t, server.URL, monitor, sleeps)

		result := client.Deduct(ctx, requestID, userID, 3)
		assert.False(t, result.Success)
		assert.False(t, result.Unavailable)
		assert.Equal(t, "insufficient balance", result.Message)
		assert.Equal(t, 1, requests)
		assert.Empty(t, monitor.failures)
	})

	t.Run("missing endpoint configuration short-circuits", func(t *testing.T) {
		monitor := &recordingMonitor{}
		client := newTestClient(t, "", monitor, &sleepRecorder{})

		result := client.Deduct(ctx, requestID, userID, 3)
		require.True(t, result.Unavailable)
		assert.Equal(t, "Integration not configured", result.Message)
		assert.Empty(t, monitor.failures)
	})
}
