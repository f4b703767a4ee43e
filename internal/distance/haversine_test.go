package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		delta                  float64
	}{
		{
			name: "bangalore to chennai",
			lat1: 12.9716, lon1: 77.5946,
			lat2: 13.0827, lon2: 80.2707,
			expected: 290,
			delta:    10,
		},
		{
			name: "same point is zero",
			lat1: 12.9716, lon1: 77.5946,
			lat2: 12.9716, lon2: 77.5946,
			expected: 0,
			delta:    0.001,
		},
		{
			name: "equator quarter turn",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 90,
			expected: 10007,
			delta:    10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, got, tt.delta)
		})
	}
}

func TestHaversineSymmetric(t *testing.T) {
	ab := Haversine(12.9716, 77.5946, 13.0827, 80.2707)
	ba := Haversine(13.0827, 80.2707, 12.9716, 77.5946)
	assert.InDelta(t, ab, ba, 0.000001)
}
