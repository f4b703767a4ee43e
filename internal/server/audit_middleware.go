package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if email, _, ok := r.BasicAuth(); ok {
			entry.UserEmail = email
		}

		if strings.HasPrefix(r.URL.Path, "/shipments/") {
			parts := strings.Split(r.URL.Path, "/")
			if len(parts) > 2 {
				entry.ShipmentID = parts[2]
			}
		}

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)

			if entry.ShipmentID != "" && strings.HasSuffix(r.URL.Path, "/status") {
				var statusRequest struct {
					Status string `json:"status"`
				}
				if err := json.Unmarshal(requestBody, &statusRequest); err == nil {
					entry.NewStatus = statusRequest.Status
				}
			}
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/freight/calculate"):
		return "handleCalculateQuotes"
	case strings.HasPrefix(path, "/freight/vendors"):
		return "handleActiveVendors"
	case strings.HasPrefix(path, "/shipments"):
		if method == http.MethodPost {
			return "handleCreateShipment"
		}
		if strings.HasSuffix(path, "/status") {
			return "handleUpdateShipmentStatus"
		}
		if path == "/shipments" {
			return "handleListShipments"
		}
		return "handleGetShipment"
	case strings.HasPrefix(path, "/track/"):
		return "handleTrackShipment"
	case strings.HasPrefix(path, "/vendors"):
		if method == http.MethodPost {
			return "handleCreateVendor"
		}
		if method == http.MethodPut {
			return "handleUpdateVendor"
		}
		return "handleListVendors"
	case strings.HasPrefix(path, "/analytics/export"):
		return "handleAnalyticsExport"
	case strings.HasPrefix(path, "/analytics"):
		return "handleAnalyticsOverview"
	case strings.HasPrefix(path, "/webhooks/erp"):
		return "handleErpWebhook"
	case strings.HasPrefix(path, "/metrics"):
		return "metrics"
	}
	return "unknown"
}
