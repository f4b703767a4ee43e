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
	"github.com/freightworks/freight-backend/internal/repository"
)

type vendorRequestBody struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	BaseRate float64 `json:"baseRate"`
	Rating   float64 `json:"rating"`
	Speed    float64 `json:"speed"`
	IsActive *bool   `json:"isActive"`
}

// validate rejects misconfiguration at write time so quote computation
// never has to cope with it.
func (b *vendorRequestBody) validate() string {
	switch {
	case b.Name == "":
		return "Missing name"
	case b.Speed <= 0:
		return "Speed must be greater than zero"
	case b.BaseRate < 0:
		return "baseRate must not be negative"
	case b.Rating < 0 || b.Rating > 5:
		return "Rating must be between 0 and 5"
	}
	return ""
}

func (s *Server) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireVendorAdmin(w, r)
	if !ok {
		return
	}

	var body vendorRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := body.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	now := time.Now().UTC()
	vendor := &repository.Vendor{
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		BaseRate:  body.BaseRate,
		Rating:    body.Rating,
		Speed:     body.Speed,
		IsActive:  isActive,
		CompanyID: identity.CompanyID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.vendors.Create(r.Context(), vendor)
	if err != nil {
		s.logger.Error("vendor creation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: failed to create vendor")
		return
	}
	vendor.ID = id
	s.vendorCache.Invalidate(identity.CompanyID)

	respondJSON(w, http.StatusCreated, vendor)
}

func (s *Server) handleUpdateVendor(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireVendorAdmin(w, r)
	if !ok {
		return
	}

	vendorID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	var body vendorRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := body.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := s.vendors.GetByID(r.Context(), vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Vendor not found")
			return
		}
		s.logger.Error("vendor lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	if existing.CompanyID != identity.CompanyID {
		respondError(w, http.StatusNotFound, "Vendor not found")
		return
	}

	existing.Name = body.Name
	existing.Email = body.Email
	existing.Phone = body.Phone
	existing.BaseRate = body.BaseRate
	existing.Rating = body.Rating
	existing.Speed = body.Speed
	existing.UpdatedAt = time.Now().UTC()
	if body.IsActive != nil {
		existing.IsActive = *body.IsActive
	}

	if err := s.vendors.Update(r.Context(), existing); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			respondError(w, http.StatusNotFound, "Vendor not found")
			return
		}
		s.logger.Error("vendor update failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: failed to update vendor")
		return
	}
	s.vendorCache.Invalidate(identity.CompanyID)

	respondJSON(w, http.StatusOK, existing)
}

func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireVendorAdmin(w, r)
	if !ok {
		return
	}

	vendors, err := s.vendors.List(r.Context(), identity.CompanyID)
	if err != nil {
		s.logger.Error("vendor listing failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, vendors)
}

func (s *Server) requireVendorAdmin(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return auth.Identity{}, false
	}
	if !auth.Allowed(identity.Role, auth.ActionManageVendors) {
		respondError(w, http.StatusForbidden, "Forbidden")
		return auth.Identity{}, false
	}
	return identity, true
}
