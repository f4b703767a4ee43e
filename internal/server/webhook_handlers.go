package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/freightworks/freight-backend/internal/metrics"
	"github.com/freightworks/freight-backend/internal/repository"
	"github.com/freightworks/freight-backend/internal/storage"
)

type erpLocationDetails struct {
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
}

type erpWebhookBody struct {
	CustomerName    string              `json:"customer_name"`
	PickupDetails   *erpLocationDetails `json:"pickup_details"`
	DeliveryDetails *erpLocationDetails `json:"delivery_details"`
	Items           []struct {
		Weight float64 `json:"weight"`
	} `json:"items"`
	ErpOrderID   string `json:"erp_order_id"`
	ShipmentType string `json:"shipmentType"`
	Urgency      string `json:"urgency"`
	Notes        string `json:"notes"`
}

// handleErpWebhook books a REQUESTED shipment on behalf of an external ERP
// system. Auth is the per-company secret header, not basic auth; the booking
// is attributed to the company's first active administrator.
func (s *Server) handleErpWebhook(w http.ResponseWriter, r *http.Request) {
	companyParam := r.URL.Query().Get("company")
	if companyParam == "" {
		respondError(w, http.StatusBadRequest, "Missing company query parameter")
		return
	}
	companyID, err := strconv.ParseInt(companyParam, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid company query parameter")
		return
	}

	company, err := s.companies.GetByID(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Company not found")
			return
		}
		s.logger.Error("company lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	providedSecret := r.Header.Get("X-Secret-Key")
	if providedSecret == "" ||
		subtle.ConstantTimeCompare([]byte(providedSecret), []byte(company.WebhookSecret)) != 1 {
		respondError(w, http.StatusUnauthorized, "Invalid webhook secret")
		return
	}

	var body erpWebhookBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	actor, err := s.users.FirstCompanyActor(r.Context(), company.ID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusConflict,
				"No active users found for company. Assign a company administrator before using the ERP webhook.")
			return
		}
		s.logger.Error("company actor lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	shipmentType := body.ShipmentType
	if shipmentType == "" {
		shipmentType = "STANDARD"
	}
	urgency := body.Urgency
	if urgency == "" {
		urgency = "MEDIUM"
	}

	notes := body.Notes
	if notes == "" {
		customer := body.CustomerName
		if customer == "" {
			customer = "customer"
		}
		notes = "ERP order for " + customer
	}

	fromLat, fromLng := body.PickupDetails.coordinates()
	toLat, toLng := body.DeliveryDetails.coordinates()

	shipment, err := s.shipments.CreateShipment(r.Context(), storage.NewShipment{
		FromLocation:      body.PickupDetails.normalize(),
		ToLocation:        body.DeliveryDetails.normalize(),
		FromLat:           fromLat,
		FromLng:           fromLng,
		ToLat:             toLat,
		ToLng:             toLng,
		Weight:            body.totalWeight(),
		ShipmentType:      shipmentType,
		Urgency:           urgency,
		EstimatedDelivery: time.Now().UTC().Add(72 * time.Hour),
		UserID:            actor.ID,
		CompanyID:         company.ID,
		TrackingNumber:    body.ErpOrderID,
		Source:            "erp",
		InitialNotes:      notes,
	})
	if err != nil {
		s.logger.Error("erp shipment creation failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("erp_webhook").Inc()
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	metrics.WebhookShipmentsTotal.Inc()
	respondJSON(w, http.StatusCreated, map[string]string{"shipment_id": shipment.ID})
}

// normalize favors a full address, then assembled city/state/country parts.
func (d *erpLocationDetails) normalize() string {
	if d == nil {
		return "Unknown"
	}
	if d.Address != "" {
		return d.Address
	}
	var parts []string
	for _, part := range []string{d.City, d.State, d.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return "Unknown"
}

// coordinates accepts either the latitude/longitude or lat/lng spellings.
func (d *erpLocationDetails) coordinates() (*float64, *float64) {
	if d == nil {
		return nil, nil
	}
	lat, lng := d.Latitude, d.Longitude
	if lat == nil {
		lat = d.Lat
	}
	if lng == nil {
		lng = d.Lng
	}
	return lat, lng
}

func (b *erpWebhookBody) totalWeight() float64 {
	var total float64
	for _, item := range b.Items {
		if item.Weight > 0 {
			total += item.Weight
		}
	}
	return total
}
