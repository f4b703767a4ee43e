package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freightworks/freight-backend/internal/repository"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    repository.ShipmentStatus
		to      repository.ShipmentStatus
		allowed bool
	}{
		{"pending to assigned", repository.StatusPending, repository.StatusAssigned, true},
		{"pending to accepted", repository.StatusPending, repository.StatusAccepted, true},
		{"pending to requested", repository.StatusPending, repository.StatusRequested, true},
		{"requested to assigned", repository.StatusRequested, repository.StatusAssigned, true},
		{"assigned to picked up", repository.StatusAssigned, repository.StatusPickedUp, true},
		{"accepted to picked up", repository.StatusAccepted, repository.StatusPickedUp, true},
		{"picked up to in transit", repository.StatusPickedUp, repository.StatusInTransit, true},
		{"in transit to delivered", repository.StatusInTransit, repository.StatusDelivered, true},

		{"pending straight to delivered", repository.StatusPending, repository.StatusDelivered, false},
		{"pending straight to in transit", repository.StatusPending, repository.StatusInTransit, false},
		{"delivered is terminal", repository.StatusDelivered, repository.StatusInTransit, false},
		{"no going backwards", repository.StatusInTransit, repository.StatusPickedUp, false},
		{"no self transition", repository.StatusAssigned, repository.StatusAssigned, false},
		{"skip picked up", repository.StatusAccepted, repository.StatusInTransit, false},
		{"unknown source status", repository.ShipmentStatus("LOST"), repository.StatusDelivered, false},
		{"unknown target status", repository.StatusPending, repository.ShipmentStatus("LOST"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []repository.ShipmentStatus{
		repository.StatusPending, repository.StatusRequested, repository.StatusAssigned,
		repository.StatusAccepted, repository.StatusPickedUp, repository.StatusInTransit,
		repository.StatusDelivered,
	} {
		assert.True(t, ValidStatus(s), "status %s", s)
	}

	assert.False(t, ValidStatus(repository.ShipmentStatus("LOST")))
	assert.False(t, ValidStatus(repository.ShipmentStatus("")))
}
