package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/freightworks/freight-backend/internal/auth"
	"github.com/freightworks/freight-backend/internal/freight"
	"github.com/freightworks/freight-backend/internal/metrics"
	"github.com/freightworks/freight-backend/internal/repository"
)

// Vendor fallbacks applied when a row carries no rate or speed.
const (
	defaultBaseRate = 10.0
	defaultSpeed    = 60.0
)

type quoteRequestBody struct {
	FromLocation string   `json:"fromLocation"`
	ToLocation   string   `json:"toLocation"`
	FromLat      *float64 `json:"fromLat"`
	FromLng      *float64 `json:"fromLng"`
	ToLat        *float64 `json:"toLat"`
	ToLng        *float64 `json:"toLng"`
	Weight       float64  `json:"weight"`
	ShipmentType string   `json:"shipmentType"`
	Urgency      string   `json:"urgency"`
}

func (b *quoteRequestBody) validate() string {
	switch {
	case b.FromLocation == "":
		return "Missing fromLocation"
	case b.ToLocation == "":
		return "Missing toLocation"
	case b.FromLat == nil || b.FromLng == nil:
		return "Missing pickup coordinates"
	case b.ToLat == nil || b.ToLng == nil:
		return "Missing delivery coordinates"
	case b.Weight <= 0:
		return "Weight must be greater than zero"
	case !freight.ValidShipmentType(freight.ShipmentType(b.ShipmentType)):
		return "Invalid shipmentType"
	case !freight.ValidUrgency(freight.Urgency(b.Urgency)):
		return "Invalid urgency"
	}
	return ""
}

func (s *Server) handleCalculateQuotes(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body quoteRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := body.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	vendors, err := s.vendorCache.ActiveVendors(r.Context(), identity.CompanyID)
	if err != nil {
		s.logger.Error("vendor lookup failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("calculate_quotes").Inc()
		respondError(w, http.StatusInternalServerError, "Error: failed to load vendors")
		return
	}
	if len(vendors) == 0 {
		respondError(w, http.StatusNotFound, "No active vendors available")
		return
	}

	dist := s.estimator.Estimate(r.Context(), *body.FromLat, *body.FromLng, *body.ToLat, *body.ToLng)

	st := freight.ShipmentType(body.ShipmentType)
	urgency := freight.Urgency(body.Urgency)
	now := time.Now().UTC()

	// Each goroutine fills its own slot so ties later rank in vendor-list
	// order; appending would rank them in goroutine-arrival order.
	quotes := make([]freight.Quote, len(vendors))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(8)

	for i, vendor := range vendors {
		i, vendor := i, vendor
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			baseRate := vendor.BaseRate
			if baseRate <= 0 {
				baseRate = defaultBaseRate
			}
			speed := vendor.Speed
			if speed <= 0 {
				speed = defaultSpeed
			}

			cost := freight.ComputeCost(dist, body.Weight, st, urgency, baseRate)
			eta, err := freight.EstimateDelivery(now, dist, speed, urgency, st)
			if err != nil {
				return err
			}

			quotes[i] = freight.Quote{
				VendorID:          vendor.ID,
				VendorName:        vendor.Name,
				Cost:              cost,
				Distance:          dist,
				EstimatedDelivery: eta,
				Rating:            vendor.Rating,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("quote computation failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("calculate_quotes").Inc()
		respondError(w, http.StatusInternalServerError, "Error: failed to compute quotes")
		return
	}

	ranked := freight.Rank(quotes)
	metrics.QuotesComputedTotal.Add(float64(len(ranked)))

	quoteRequestID := s.recordQuoteRequest(r, identity, body)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"fromLocation":   body.FromLocation,
		"toLocation":     body.ToLocation,
		"distance":       dist,
		"weight":         body.Weight,
		"shipmentType":   body.ShipmentType,
		"urgency":        body.Urgency,
		"quoteRequestId": quoteRequestID,
		"quotes":         ranked,
	})
}

// recordQuoteRequest persists the funnel row for analytics. The quote
// response never fails on it; a zero id means the write was lost.
func (s *Server) recordQuoteRequest(r *http.Request, identity auth.Identity, body quoteRequestBody) int64 {
	now := time.Now().UTC()
	id, err := s.quoteRequests.Create(r.Context(), &repository.QuoteRequest{
		UserID:       identity.UserID,
		CompanyID:    identity.CompanyID,
		FromLocation: body.FromLocation,
		ToLocation:   body.ToLocation,
		Weight:       body.Weight,
		ShipmentType: body.ShipmentType,
		Urgency:      body.Urgency,
		Status:       repository.QuoteRequested,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		s.logger.Warn("quote request row not recorded", zap.Error(err))
		return 0
	}
	return id
}

func (s *Server) handleActiveVendors(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vendors, err := s.vendorCache.ActiveVendors(r.Context(), identity.CompanyID)
	if err != nil {
		s.logger.Error("vendor lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: failed to load vendors")
		return
	}

	out := make([]map[string]interface{}, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, map[string]interface{}{
			"id":       v.ID,
			"name":     v.Name,
			"rating":   v.Rating,
			"baseRate": v.BaseRate,
		})
	}
	respondJSON(w, http.StatusOK, out)
}
