package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/freightworks/freight-backend/internal/metrics"
)

// Estimator resolves travel distance between two coordinate pairs. It asks
// the OSRM routing service first and falls back to the great-circle formula
// on any failure, so Estimate never fails outward.
type Estimator struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewEstimator(baseURL string, timeout time.Duration, logger *zap.Logger) *Estimator {
	return &Estimator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type osrmResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// Estimate returns the driving distance in kilometers. One routing attempt,
// no retries; any error is logged and recovered via Haversine.
func (e *Estimator) Estimate(ctx context.Context, fromLat, fromLng, toLat, toLng float64) float64 {
	km, err := e.route(ctx, fromLat, fromLng, toLat, toLng)
	if err != nil {
		e.logger.Warn("routing provider failed, falling back to haversine",
			zap.Error(err))
		metrics.DistanceFallbackTotal.Inc()
		return Haversine(fromLat, fromLng, toLat, toLng)
	}
	return km
}

func (e *Estimator) route(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		e.baseURL, fromLng, fromLat, toLng, toLat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("routing provider returned status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("malformed routing response: %w", err)
	}

	if len(body.Routes) == 0 {
		return 0, fmt.Errorf("no route found")
	}

	// OSRM reports meters.
	return body.Routes[0].Distance / 1000, nil
}
