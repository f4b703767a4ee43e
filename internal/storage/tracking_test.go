package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	tn, err := NewTrackingNumber()
	require.NoError(t, err)

	assert.Len(t, tn, 12)
	assert.True(t, strings.HasPrefix(tn, "FR"))
	for _, c := range tn[2:] {
		assert.Contains(t, trackingAlphabet, string(c))
	}
}

func TestNewTrackingNumberUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		tn, err := NewTrackingNumber()
		require.NoError(t, err)

		_, dup := seen[tn]
		require.False(t, dup, "duplicate tracking number %s", tn)
		seen[tn] = struct{}{}
	}
}
