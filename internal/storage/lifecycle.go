package storage

import (
	"errors"

	"github.com/freightworks/freight-backend/internal/repository"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// allowedTransitions encodes the shipment lifecycle:
// PENDING/REQUESTED -> ASSIGNED/ACCEPTED -> PICKED_UP -> IN_TRANSIT -> DELIVERED.
// DELIVERED is terminal.
var allowedTransitions = map[repository.ShipmentStatus][]repository.ShipmentStatus{
	repository.StatusPending:   {repository.StatusRequested, repository.StatusAssigned, repository.StatusAccepted},
	repository.StatusRequested: {repository.StatusAssigned, repository.StatusAccepted},
	repository.StatusAssigned:  {repository.StatusAccepted, repository.StatusPickedUp},
	repository.StatusAccepted:  {repository.StatusPickedUp},
	repository.StatusPickedUp:  {repository.StatusInTransit},
	repository.StatusInTransit: {repository.StatusDelivered},
	repository.StatusDelivered: {},
}

func ValidStatus(s repository.ShipmentStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether moving from one status to the next is legal.
func CanTransition(from, to repository.ShipmentStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
