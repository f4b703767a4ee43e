package distance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestEstimatorUsesRoutingService(t *testing.T) {
	var requestedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"routes":[{"distance":295000}]}`))
	}))
	defer srv.Close()

	e := NewEstimator(srv.URL, 2*time.Second, zap.NewNop())

	got := e.Estimate(context.Background(), 12.9716, 77.5946, 13.0827, 80.2707)
	assert.InDelta(t, 295, got, 0.001)
	// OSRM expects lng,lat pairs.
	assert.Contains(t, requestedPath, "/route/v1/driving/77.594600,12.971600;80.270700,13.082700")
}

func TestEstimatorFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewEstimator(srv.URL, 2*time.Second, zap.NewNop())

	got := e.Estimate(context.Background(), 12.9716, 77.5946, 13.0827, 80.2707)
	assert.InDelta(t, 290, got, 10)
}

func TestEstimatorFallsBackOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"routes": not json`))
	}))
	defer srv.Close()

	e := NewEstimator(srv.URL, 2*time.Second, zap.NewNop())

	got := e.Estimate(context.Background(), 12.9716, 77.5946, 13.0827, 80.2707)
	assert.InDelta(t, 290, got, 10)
}

func TestEstimatorFallsBackOnEmptyRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"routes":[]}`))
	}))
	defer srv.Close()

	e := NewEstimator(srv.URL, 2*time.Second, zap.NewNop())

	got := e.Estimate(context.Background(), 12.9716, 77.5946, 13.0827, 80.2707)
	assert.InDelta(t, 290, got, 10)
}

func TestEstimatorFallsBackWhenUnreachable(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	e := NewEstimator(srv.URL, 500*time.Millisecond, zap.NewNop())

	got := e.Estimate(context.Background(), 12.9716, 77.5946, 13.0827, 80.2707)
	assert.InDelta(t, 290, got, 10)
}
