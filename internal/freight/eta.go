package freight

import (
	"errors"
	"time"
)

// ErrZeroSpeed marks a vendor configured with a non-positive average speed.
// Vendor writes reject such rows up front; this is the backstop.
var ErrZeroSpeed = errors.New("vendor speed must be greater than zero")

var processingHours = map[Urgency]float64{
	UrgencyLow:    48,
	UrgencyMedium: 24,
	UrgencyHigh:   12,
	UrgencyUrgent: 4,
}

// EstimateDelivery computes the estimated delivery timestamp: travel time at
// the vendor's average speed plus an urgency-dependent processing offset,
// with fragile/hazardous handling stretching the total.
func EstimateDelivery(now time.Time, distance, speed float64, u Urgency, st ShipmentType) (time.Time, error) {
	if speed <= 0 {
		return time.Time{}, ErrZeroSpeed
	}

	totalHours := distance / speed

	if h, ok := processingHours[u]; ok {
		totalHours += h
	} else {
		totalHours += 24
	}

	switch st {
	case TypeFragile:
		totalHours *= 1.2
	case TypeHazardous:
		totalHours *= 1.3
	}

	return now.Add(time.Duration(totalHours * float64(time.Hour))), nil
}
