package freight

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	eta := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	quotes := []Quote{
		{VendorID: 1, VendorName: "Pricey Movers", Cost: 2000, Rating: 4.8, EstimatedDelivery: eta},
		{VendorID: 2, VendorName: "Budget Freight", Cost: 900, Rating: 3.0, EstimatedDelivery: eta},
		{VendorID: 3, VendorName: "Balanced Cargo", Cost: 1100, Rating: 4.5, EstimatedDelivery: eta},
	}

	ranked := Rank(quotes)
	require.Len(t, ranked, 3)

	// score: v1 = 1400+20 = 1420, v2 = 630+200 = 830, v3 = 770+50 = 820
	assert.Equal(t, int64(3), ranked[0].VendorID)
	assert.Equal(t, int64(2), ranked[1].VendorID)
	assert.Equal(t, int64(1), ranked[2].VendorID)
}

func TestRankStableOnTies(t *testing.T) {
	quotes := []Quote{
		{VendorID: 10, Cost: 1000, Rating: 4.0},
		{VendorID: 20, Cost: 1000, Rating: 4.0},
		{VendorID: 30, Cost: 1000, Rating: 4.0},
	}

	ranked := Rank(quotes)
	assert.Equal(t, int64(10), ranked[0].VendorID)
	assert.Equal(t, int64(20), ranked[1].VendorID)
	assert.Equal(t, int64(30), ranked[2].VendorID)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Empty(t, Rank([]Quote{}))
}

func TestScore(t *testing.T) {
	assert.InDelta(t, 820.0, Score(1100, 4.5), 0.001)
	assert.InDelta(t, 500.0, Score(0, 0), 0.001)
}

func TestQuoteScoreNotSerialized(t *testing.T) {
	quotes := Rank([]Quote{
		{VendorID: 1, VendorName: "A", Cost: 500, Rating: 4.0},
		{VendorID: 2, VendorName: "B", Cost: 700, Rating: 4.9},
		{VendorID: 3, VendorName: "C", Cost: 300, Rating: 2.1},
		{VendorID: 4, VendorName: "D", Cost: 950, Rating: 5.0},
		{VendorID: 5, VendorName: "E", Cost: 820, Rating: 3.3},
	})

	payload, err := json.Marshal(quotes)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "score")
	assert.NotContains(t, string(payload), "Score")

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Len(t, decoded, 5)
	for _, q := range decoded {
		assert.Contains(t, q, "vendorId")
		assert.Contains(t, q, "cost")
		assert.Contains(t, q, "rating")
		assert.NotContains(t, q, "score")
	}
}
