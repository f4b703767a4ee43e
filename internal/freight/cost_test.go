package freight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCost(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		weight   float64
		st       ShipmentType
		urgency  Urgency
		baseRate float64
		expected float64
	}{
		{
			name:     "standard medium 250kg over 330km",
			distance: 330,
			weight:   250,
			st:       TypeStandard,
			urgency:  UrgencyMedium,
			baseRate: 12.5,
			expected: 4537.50,
		},
		{
			name:     "light cargo no weight factor",
			distance: 100,
			weight:   100,
			st:       TypeStandard,
			urgency:  UrgencyMedium,
			baseRate: 10,
			expected: 1000.00,
		},
		{
			name:     "just over first breakpoint",
			distance: 100,
			weight:   100.01,
			st:       TypeStandard,
			urgency:  UrgencyMedium,
			baseRate: 10,
			expected: 1100.00,
		},
		{
			name:     "mid breakpoint at 500kg exclusive",
			distance: 100,
			weight:   500,
			st:       TypeStandard,
			urgency:  UrgencyMedium,
			baseRate: 10,
			expected: 1100.00,
		},
		{
			name:     "heavy cargo over 1000kg",
			distance: 100,
			weight:   1001,
			st:       TypeStandard,
			urgency:  UrgencyMedium,
			baseRate: 10,
			expected: 1500.00,
		},
		{
			name:     "hazardous urgent compounds all factors",
			distance: 200,
			weight:   600,
			st:       TypeHazardous,
			urgency:  UrgencyUrgent,
			baseRate: 10,
			expected: 7488.00,
		},
		{
			name:     "low urgency discounts",
			distance: 100,
			weight:   50,
			st:       TypeExpress,
			urgency:  UrgencyLow,
			baseRate: 10,
			expected: 1350.00,
		},
		{
			name:     "unknown enums fall back to neutral factors",
			distance: 100,
			weight:   50,
			st:       ShipmentType("OVERSIZED"),
			urgency:  Urgency("WHENEVER"),
			baseRate: 10,
			expected: 1000.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCost(tt.distance, tt.weight, tt.st, tt.urgency, tt.baseRate)
			assert.InDelta(t, tt.expected, got, 0.001)
		})
	}
}

func TestComputeCostDeterministic(t *testing.T) {
	first := ComputeCost(412.7, 831.9, TypeFragile, UrgencyHigh, 11.25)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ComputeCost(412.7, 831.9, TypeFragile, UrgencyHigh, 11.25))
	}
}

func TestWeightMultiplier(t *testing.T) {
	tests := []struct {
		weight   float64
		expected float64
	}{
		{0, 1.0},
		{100, 1.0},
		{100.5, 1.1},
		{500, 1.1},
		{500.5, 1.3},
		{1000, 1.3},
		{1000.5, 1.5},
		{25000, 1.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, WeightMultiplier(tt.weight), "weight %v", tt.weight)
	}
}
