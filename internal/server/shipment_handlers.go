package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/freightworks/freight-backend/internal/auth"
	"github.com/freightworks/freight-backend/internal/freight"
	"github.com/freightworks/freight-backend/internal/metrics"
	"github.com/freightworks/freight-backend/internal/repository"
	"github.com/freightworks/freight-backend/internal/storage"
)

func (s *Server) handleCreateShipment(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		FromLocation      string   `json:"fromLocation"`
		ToLocation        string   `json:"toLocation"`
		FromLat           *float64 `json:"fromLat"`
		FromLng           *float64 `json:"fromLng"`
		ToLat             *float64 `json:"toLat"`
		ToLng             *float64 `json:"toLng"`
		Weight            float64  `json:"weight"`
		ShipmentType      string   `json:"shipmentType"`
		Urgency           string   `json:"urgency"`
		SelectedVendorID  int64    `json:"selectedVendorId"`
		Cost              float64  `json:"cost"`
		Distance          float64  `json:"distance"`
		EstimatedDelivery string   `json:"estimatedDelivery"`
		QuoteRequestID    *int64   `json:"quoteRequestId"`
		Notes             string   `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch {
	case body.FromLocation == "" || body.ToLocation == "":
		respondError(w, http.StatusBadRequest, "Missing fromLocation or toLocation")
		return
	case body.Weight <= 0:
		respondError(w, http.StatusBadRequest, "Weight must be greater than zero")
		return
	case !freight.ValidShipmentType(freight.ShipmentType(body.ShipmentType)):
		respondError(w, http.StatusBadRequest, "Invalid shipmentType")
		return
	case !freight.ValidUrgency(freight.Urgency(body.Urgency)):
		respondError(w, http.StatusBadRequest, "Invalid urgency")
		return
	case body.SelectedVendorID == 0:
		respondError(w, http.StatusBadRequest, "Missing selectedVendorId")
		return
	case body.Cost <= 0:
		respondError(w, http.StatusBadRequest, "Missing cost")
		return
	case body.Distance <= 0:
		respondError(w, http.StatusBadRequest, "Missing distance")
		return
	}

	eta, err := time.Parse(time.RFC3339, body.EstimatedDelivery)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid estimatedDelivery. Use RFC3339")
		return
	}

	shipment, err := s.shipments.CreateShipment(r.Context(), storage.NewShipment{
		FromLocation:      body.FromLocation,
		ToLocation:        body.ToLocation,
		FromLat:           body.FromLat,
		FromLng:           body.FromLng,
		ToLat:             body.ToLat,
		ToLng:             body.ToLng,
		Weight:            body.Weight,
		ShipmentType:      body.ShipmentType,
		Urgency:           body.Urgency,
		Cost:              body.Cost,
		Distance:          body.Distance,
		EstimatedDelivery: eta,
		UserID:            identity.UserID,
		CompanyID:         identity.CompanyID,
		VendorID:          body.SelectedVendorID,
		QuoteRequestID:    body.QuoteRequestID,
		Source:            "api",
		InitialNotes:      body.Notes,
	})
	if err != nil {
		s.logger.Error("shipment creation failed", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("create_shipment").Inc()
		respondError(w, http.StatusInternalServerError, "Error: failed to create shipment")
		return
	}

	metrics.ShipmentsCreatedTotal.Inc()
	respondJSON(w, http.StatusCreated, shipment)
}

func (s *Server) handleListShipments(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var shipments []*repository.Shipment
	if auth.Allowed(identity.Role, auth.ActionListCompanyShipments) {
		shipments, err = s.shipments.ListCompanyShipments(r.Context(), identity.CompanyID, page, limit)
	} else {
		shipments, err = s.shipments.ListUserShipments(r.Context(), identity.UserID, page, limit)
	}
	if err != nil {
		s.logger.Error("shipment listing failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, shipments)
}

func (s *Server) handleGetShipment(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shipmentID := mux.Vars(r)["id"]
	if shipmentID == "" {
		respondError(w, http.StatusBadRequest, "Missing shipment ID")
		return
	}

	detail, err := s.shipments.GetShipment(r.Context(), shipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Shipment not found")
			return
		}
		s.logger.Error("shipment lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	// Detail reads are tenant-scoped like the list endpoint; a foreign
	// shipment reads as absent rather than forbidden.
	if detail.Shipment.CompanyID != identity.CompanyID && identity.Role != auth.RoleSuperAdmin {
		respondError(w, http.StatusNotFound, "Shipment not found")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func (s *Server) handleUpdateShipmentStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if !auth.Allowed(identity.Role, auth.ActionUpdateShipmentStatus) {
		respondError(w, http.StatusForbidden, "Forbidden")
		return
	}

	shipmentID := mux.Vars(r)["id"]
	if shipmentID == "" {
		respondError(w, http.StatusBadRequest, "Missing shipment ID")
		return
	}

	var body struct {
		Status   string `json:"status"`
		Notes    string `json:"notes"`
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Status == "" {
		respondError(w, http.StatusBadRequest, "Missing status")
		return
	}

	shipment, err := s.shipments.UpdateStatus(r.Context(), shipmentID,
		repository.ShipmentStatus(body.Status), body.Notes, body.Location, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidTransition):
			respondError(w, http.StatusBadRequest, "Error: "+err.Error())
		case errors.Is(err, repository.ErrObjectNotFound):
			respondError(w, http.StatusNotFound, "Shipment not found")
		default:
			s.logger.Error("status update failed",
				zap.String("shipment_id", shipmentID), zap.Error(err))
			metrics.OperationErrorsTotal.WithLabelValues("update_status").Inc()
			respondError(w, http.StatusInternalServerError, "Error: failed to update status")
		}
		return
	}

	metrics.StatusUpdatesTotal.Inc()
	respondJSON(w, http.StatusOK, shipment)
}

// handleTrackShipment is the one unauthenticated read: shipment plus full
// history by tracking number.
func (s *Server) handleTrackShipment(w http.ResponseWriter, r *http.Request) {
	trackingNumber := mux.Vars(r)["trackingNumber"]
	if trackingNumber == "" {
		respondError(w, http.StatusBadRequest, "Missing tracking number")
		return
	}

	detail, err := s.shipments.GetByTracking(r.Context(), trackingNumber)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Shipment not found")
			return
		}
		s.logger.Error("tracking lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

func parsePagination(r *http.Request) (page, limit int, err error) {
	page, limit = 1, 20

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			return 0, 0, errors.New("Invalid value for 'page' parameter")
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 || limit > 100 {
			return 0, 0, errors.New("Invalid value for 'limit' parameter")
		}
	}
	return page, limit, nil
}
