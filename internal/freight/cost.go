package freight

import "math"

var typeMultiplier = map[ShipmentType]float64{
	TypeStandard:  1.0,
	TypeExpress:   1.5,
	TypeFragile:   1.3,
	TypeHazardous: 1.8,
}

var urgencyMultiplier = map[Urgency]float64{
	UrgencyLow:    0.9,
	UrgencyMedium: 1.0,
	UrgencyHigh:   1.3,
	UrgencyUrgent: 1.6,
}

// WeightMultiplier returns the tariff factor for a cargo weight in kg.
// Breakpoints are exclusive lower bounds at 100/500/1000.
func WeightMultiplier(weight float64) float64 {
	switch {
	case weight > 1000:
		return 1.5
	case weight > 500:
		return 1.3
	case weight > 100:
		return 1.1
	default:
		return 1.0
	}
}

// ComputeCost prices a shipment: baseRate per km times distance, then the
// weight, shipment-type and urgency factors in that order, rounded to the
// cent (half away from zero).
func ComputeCost(distance, weight float64, st ShipmentType, u Urgency, baseRate float64) float64 {
	cost := baseRate * distance

	cost *= WeightMultiplier(weight)

	if m, ok := typeMultiplier[st]; ok {
		cost *= m
	}

	if m, ok := urgencyMultiplier[u]; ok {
		cost *= m
	}

	return math.Round(cost*100) / 100
}
