package freight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDelivery(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	hour := float64(time.Hour)

	tests := []struct {
		name     string
		distance float64
		speed    float64
		urgency  Urgency
		st       ShipmentType
		expected time.Time
	}{
		{
			name:     "medium standard adds travel plus processing",
			distance: 300,
			speed:    60,
			urgency:  UrgencyMedium,
			st:       TypeStandard,
			expected: now.Add(29 * time.Hour),
		},
		{
			name:     "urgent shrinks processing window",
			distance: 300,
			speed:    60,
			urgency:  UrgencyUrgent,
			st:       TypeStandard,
			expected: now.Add(9 * time.Hour),
		},
		{
			name:     "low urgency waits two days",
			distance: 60,
			speed:    60,
			urgency:  UrgencyLow,
			st:       TypeStandard,
			expected: now.Add(49 * time.Hour),
		},
		{
			name:     "fragile stretches the total",
			distance: 300,
			speed:    60,
			urgency:  UrgencyMedium,
			st:       TypeFragile,
			expected: now.Add(time.Duration(29 * 1.2 * hour)),
		},
		{
			name:     "hazardous stretches further",
			distance: 300,
			speed:    60,
			urgency:  UrgencyMedium,
			st:       TypeHazardous,
			expected: now.Add(time.Duration(29 * 1.3 * hour)),
		},
		{
			name:     "unknown urgency defaults to one day processing",
			distance: 300,
			speed:    60,
			urgency:  Urgency("WHENEVER"),
			st:       TypeStandard,
			expected: now.Add(29 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateDelivery(now, tt.distance, tt.speed, tt.urgency, tt.st)
			require.NoError(t, err)
			assert.WithinDuration(t, tt.expected, got, time.Second)
			assert.True(t, got.After(now), "ETA must be after booking time")
		})
	}
}

func TestEstimateDeliveryZeroSpeed(t *testing.T) {
	now := time.Now().UTC()

	_, err := EstimateDelivery(now, 100, 0, UrgencyMedium, TypeStandard)
	assert.ErrorIs(t, err, ErrZeroSpeed)

	_, err = EstimateDelivery(now, 100, -10, UrgencyMedium, TypeStandard)
	assert.ErrorIs(t, err, ErrZeroSpeed)
}
