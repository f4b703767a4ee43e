package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/freightworks/freight-backend/internal/auth"
	"github.com/freightworks/freight-backend/internal/repository"
)

const defaultWindowDays = 30

type vendorPerformance struct {
	VendorID       int64   `json:"vendorId"`
	Name           string  `json:"name"`
	Rating         float64 `json:"rating"`
	IsActive       bool    `json:"isActive"`
	TotalShipments int64   `json:"totalShipments"`
	DeliveryRate   float64 `json:"deliveryRate"`
	AvgCost        float64 `json:"avgCost"`
}

type roleGovernance struct {
	Role        string     `json:"role"`
	Total       int64      `json:"total"`
	Active      int64      `json:"active"`
	Pending     int64      `json:"pending"`
	Suspended   int64      `json:"suspended"`
	LatestLogin *time.Time `json:"latestLogin,omitempty"`
}

func (s *Server) handleAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireAnalyticsViewer(w, r)
	if !ok {
		return
	}

	days := defaultWindowDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		var err error
		days, err = strconv.Atoi(daysStr)
		if err != nil || days <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'days' parameter")
			return
		}
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	ctx := r.Context()

	shipmentCounts, err := s.analytics.ShipmentCountsByStatus(ctx, identity.CompanyID, since)
	if err != nil {
		s.analyticsError(w, "shipment counts", err)
		return
	}

	funnel, err := s.analytics.QuoteFunnel(ctx, identity.CompanyID, since)
	if err != nil {
		s.analyticsError(w, "quote funnel", err)
		return
	}

	invoiceTotals, err := s.analytics.InvoiceTotalsByStatus(ctx, identity.CompanyID)
	if err != nil {
		s.analyticsError(w, "invoice totals", err)
		return
	}

	totalVendors, activeVendors, err := s.analytics.VendorCounts(ctx, identity.CompanyID)
	if err != nil {
		s.analyticsError(w, "vendor counts", err)
		return
	}

	rollups, err := s.analytics.VendorRollups(ctx, identity.CompanyID)
	if err != nil {
		s.analyticsError(w, "vendor rollups", err)
		return
	}

	users, err := s.users.ListByCompany(ctx, identity.CompanyID)
	if err != nil {
		s.analyticsError(w, "user governance", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"windowDays":       days,
		"since":            since,
		"shipmentsTotal":   sumCounts(shipmentCounts),
		"shipmentStatuses": countMap(shipmentCounts),
		"quoteFunnel":      quoteFunnelMap(funnel),
		"invoices":         invoiceTotals,
		"vendors": map[string]interface{}{
			"total":       totalVendors,
			"active":      activeVendors,
			"performance": vendorPerformances(rollups),
		},
		"userGovernance": governanceByRole(users),
	})
}

func (s *Server) analyticsError(w http.ResponseWriter, what string, err error) {
	s.logger.Error("analytics query failed", zap.String("query", what), zap.Error(err))
	respondError(w, http.StatusInternalServerError, "Error: failed to compute "+what)
}

func sumCounts(counts []*repository.StatusCount) int64 {
	var total int64
	for _, c := range counts {
		total += c.Count
	}
	return total
}

func countMap(counts []*repository.StatusCount) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for _, c := range counts {
		out[c.Status] = c.Count
	}
	return out
}

// quoteFunnelMap always reports the three funnel stages, zero-valued when
// a stage has no rows in the window.
func quoteFunnelMap(counts []*repository.StatusCount) map[string]int64 {
	out := map[string]int64{
		"requested": 0,
		"responded": 0,
		"approved":  0,
	}
	for _, c := range counts {
		switch repository.QuoteRequestStatus(c.Status) {
		case repository.QuoteRequested:
			out["requested"] = c.Count
		case repository.QuoteResponded:
			out["responded"] = c.Count
		case repository.QuoteApproved:
			out["approved"] = c.Count
		}
	}
	return out
}

func vendorPerformances(rollups []*repository.VendorRollup) []vendorPerformance {
	out := make([]vendorPerformance, 0, len(rollups))
	for _, r := range rollups {
		perf := vendorPerformance{
			VendorID:       r.VendorID,
			Name:           r.Name,
			Rating:         r.Rating,
			IsActive:       r.IsActive,
			TotalShipments: r.TotalShipments,
			AvgCost:        r.AvgCost,
		}
		if r.TotalShipments > 0 {
			perf.DeliveryRate = float64(r.Delivered) / float64(r.TotalShipments) * 100
		}
		out = append(out, perf)
	}
	return out
}

func governanceByRole(users []*repository.User) []roleGovernance {
	byRole := make(map[string]*roleGovernance)
	var order []string

	for _, u := range users {
		g, ok := byRole[u.Role]
		if !ok {
			g = &roleGovernance{Role: u.Role}
			byRole[u.Role] = g
			order = append(order, u.Role)
		}
		g.Total++
		if u.IsActive {
			g.Active++
		} else {
			g.Suspended++
		}
		if u.ApprovalStatus == "PENDING" {
			g.Pending++
		}
		if u.LastLoginAt != nil && (g.LatestLogin == nil || u.LastLoginAt.After(*g.LatestLogin)) {
			g.LatestLogin = u.LastLoginAt
		}
	}

	out := make([]roleGovernance, 0, len(order))
	for _, role := range order {
		out = append(out, *byRole[role])
	}
	return out
}

func (s *Server) handleAnalyticsExport(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireAnalyticsViewer(w, r)
	if !ok {
		return
	}

	dataset := r.URL.Query().Get("dataset")
	var (
		rows [][]string
		err  error
	)

	switch dataset {
	case "shipments":
		rows, err = s.exportShipments(r, identity.CompanyID)
	case "quotes":
		rows, err = s.exportQuotes(r, identity.CompanyID)
	case "invoices":
		rows, err = s.exportInvoices(r, identity.CompanyID)
	case "vendors":
		rows, err = s.exportVendors(r, identity.CompanyID)
	default:
		respondError(w, http.StatusBadRequest, "Unknown dataset. Use shipments, quotes, invoices or vendors")
		return
	}
	if err != nil {
		s.logger.Error("csv export failed", zap.String("dataset", dataset), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: failed to export "+dataset)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s-%s.csv"`, dataset, time.Now().UTC().Format("2006-01-02")))

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		s.logger.Error("csv write failed", zap.Error(err))
	}
}

func (s *Server) exportShipments(r *http.Request, companyID int64) ([][]string, error) {
	shipments, err := s.shipmentRepo.ListForExport(r.Context(), companyID)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"id", "tracking_number", "from_location", "to_location",
		"weight", "shipment_type", "urgency", "cost", "distance", "status",
		"vendor_id", "estimated_delivery", "created_at"}}
	for _, sh := range shipments {
		rows = append(rows, []string{
			sh.ID,
			sh.TrackingNumber,
			sh.FromLocation,
			sh.ToLocation,
			formatFloat(sh.Weight),
			sh.ShipmentType,
			sh.Urgency,
			formatFloat(sh.Cost),
			formatFloat(sh.Distance),
			string(sh.Status),
			strconv.FormatInt(sh.VendorID, 10),
			sh.EstimatedDelivery.UTC().Format(time.RFC3339),
			sh.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows, nil
}

func (s *Server) exportQuotes(r *http.Request, companyID int64) ([][]string, error) {
	quotes, err := s.quoteRequests.ListForExport(r.Context(), companyID)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"id", "from_location", "to_location", "weight",
		"shipment_type", "urgency", "status", "created_at"}}
	for _, q := range quotes {
		rows = append(rows, []string{
			strconv.FormatInt(q.ID, 10),
			q.FromLocation,
			q.ToLocation,
			formatFloat(q.Weight),
			q.ShipmentType,
			q.Urgency,
			string(q.Status),
			q.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows, nil
}

func (s *Server) exportInvoices(r *http.Request, companyID int64) ([][]string, error) {
	invoices, err := s.invoices.ListForExport(r.Context(), companyID)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"id", "invoice_number", "shipment_id", "status",
		"grand_total", "issued_at", "due_date"}}
	for _, inv := range invoices {
		shipmentID := ""
		if inv.ShipmentID != nil {
			shipmentID = *inv.ShipmentID
		}
		rows = append(rows, []string{
			strconv.FormatInt(inv.ID, 10),
			inv.InvoiceNumber,
			shipmentID,
			string(inv.Status),
			formatFloat(inv.GrandTotal),
			formatTimePtr(inv.IssuedAt),
			formatTimePtr(inv.DueDate),
		})
	}
	return rows, nil
}

func (s *Server) exportVendors(r *http.Request, companyID int64) ([][]string, error) {
	vendors, err := s.vendors.List(r.Context(), companyID)
	if err != nil {
		return nil, err
	}

	rows := [][]string{{"id", "name", "email", "phone", "base_rate", "rating",
		"speed", "is_active", "created_at"}}
	for _, v := range vendors {
		rows = append(rows, []string{
			strconv.FormatInt(v.ID, 10),
			v.Name,
			v.Email,
			v.Phone,
			formatFloat(v.BaseRate),
			formatFloat(v.Rating),
			formatFloat(v.Speed),
			strconv.FormatBool(v.IsActive),
			v.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (s *Server) requireAnalyticsViewer(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return auth.Identity{}, false
	}
	if !auth.Allowed(identity.Role, auth.ActionViewAnalytics) {
		respondError(w, http.StatusForbidden, "Forbidden")
		return auth.Identity{}, false
	}
	return identity, true
}
