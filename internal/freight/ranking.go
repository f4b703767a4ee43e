package freight

import (
	"sort"
	"time"
)

// Quote is the per-vendor price/ETA estimate returned by the quote flow.
// It is never persisted. The ranking score stays internal: the json tag
// keeps it out of every response payload.
type Quote struct {
	VendorID          int64     `json:"vendorId"`
	VendorName        string    `json:"vendorName"`
	Cost              float64   `json:"cost"`
	Distance          float64   `json:"distance"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	Rating            float64   `json:"rating"`
	Score             float64   `json:"-"`
}

// Score blends price and vendor rating; lower is better.
func Score(cost, rating float64) float64 {
	return cost*0.7 + (5-rating)*100
}

// Rank orders quotes best-first. The sort is stable: vendors with equal
// scores keep their input order.
func Rank(quotes []Quote) []Quote {
	for i := range quotes {
		quotes[i].Score = Score(quotes[i].Cost, quotes[i].Rating)
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Score < quotes[j].Score
	})
	return quotes
}
