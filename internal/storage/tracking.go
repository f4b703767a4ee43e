package storage

import (
	"crypto/rand"
	"fmt"
)

const (
	trackingPrefix   = "FR"
	trackingAlphabet = "1234567890ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	trackingCodeLen  = 10
)

// NewTrackingNumber generates the externally visible shipment identifier:
// a fixed prefix plus 10 characters from a 36-symbol alphabet.
func NewTrackingNumber() (string, error) {
	buf := make([]byte, trackingCodeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate tracking number: %w", err)
	}
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return trackingPrefix + string(buf), nil
}
