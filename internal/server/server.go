//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/freightworks/freight-backend/internal/auth"
	"github.com/freightworks/freight-backend/internal/repository"
	"github.com/freightworks/freight-backend/internal/storage"
)

type ShipmentStore interface {
	CreateShipment(ctx context.Context, req storage.NewShipment) (*repository.Shipment, error)
	UpdateStatus(ctx context.Context, shipmentID string, status repository.ShipmentStatus, notes, location string, actorID int64) (*repository.Shipment, error)
	GetShipment(ctx context.Context, id string) (*storage.ShipmentDetail, error)
	GetByTracking(ctx context.Context, trackingNumber string) (*storage.ShipmentDetail, error)
	ListUserShipments(ctx context.Context, userID int64, page, limit int) ([]*repository.Shipment, error)
	ListCompanyShipments(ctx context.Context, companyID int64, page, limit int) ([]*repository.Shipment, error)
}

type UserRepo interface {
	Authenticate(ctx context.Context, email, password string) (*repository.User, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*repository.User, error)
	FirstCompanyActor(ctx context.Context, companyID int64) (*repository.User, error)
}

type VendorRepo interface {
	Create(ctx context.Context, v *repository.Vendor) (int64, error)
	Update(ctx context.Context, v *repository.Vendor) error
	GetByID(ctx context.Context, id int64) (*repository.Vendor, error)
	List(ctx context.Context, companyID int64) ([]*repository.Vendor, error)
}

type VendorCache interface {
	ActiveVendors(ctx context.Context, companyID int64) ([]*repository.Vendor, error)
	Invalidate(companyID int64)
}

type QuoteRequestRepo interface {
	Create(ctx context.Context, q *repository.QuoteRequest) (int64, error)
	ListForExport(ctx context.Context, companyID int64) ([]*repository.QuoteRequest, error)
}

type AnalyticsRepo interface {
	ShipmentCountsByStatus(ctx context.Context, companyID int64, since time.Time) ([]*repository.StatusCount, error)
	QuoteFunnel(ctx context.Context, companyID int64, since time.Time) ([]*repository.StatusCount, error)
	InvoiceTotalsByStatus(ctx context.Context, companyID int64) ([]*repository.InvoiceTotal, error)
	VendorRollups(ctx context.Context, companyID int64) ([]*repository.VendorRollup, error)
	VendorCounts(ctx context.Context, companyID int64) (total, active int64, err error)
}

type ShipmentExporter interface {
	ListForExport(ctx context.Context, companyID int64) ([]*repository.Shipment, error)
}

type InvoiceRepo interface {
	ListForExport(ctx context.Context, companyID int64) ([]*repository.Invoice, error)
}

type CompanyRepo interface {
	GetByID(ctx context.Context, id int64) (*repository.Company, error)
}

type DistanceEstimator interface {
	Estimate(ctx context.Context, fromLat, fromLng, toLat, toLng float64) float64
}

type Server struct {
	shipments     ShipmentStore
	shipmentRepo  ShipmentExporter
	users         UserRepo
	vendors       VendorRepo
	vendorCache   VendorCache
	quoteRequests QuoteRequestRepo
	analytics     AnalyticsRepo
	invoices      InvoiceRepo
	companies     CompanyRepo
	estimator     DistanceEstimator
	logger        *zap.Logger

	server       *http.Server
	AuditManager *AuditManager
}

// Deps bundles the server's collaborators; every field is required except
// noted on the field.
type Deps struct {
	Shipments     ShipmentStore
	ShipmentRepo  ShipmentExporter
	Users         UserRepo
	Vendors       VendorRepo
	VendorCache   VendorCache
	QuoteRequests QuoteRequestRepo
	Analytics     AnalyticsRepo
	Invoices      InvoiceRepo
	Companies     CompanyRepo
	Estimator     DistanceEstimator
	Logger        *zap.Logger
}

func New(deps Deps) *Server {
	return &Server{
		shipments:     deps.Shipments,
		shipmentRepo:  deps.ShipmentRepo,
		users:         deps.Users,
		vendors:       deps.Vendors,
		vendorCache:   deps.VendorCache,
		quoteRequests: deps.QuoteRequests,
		analytics:     deps.Analytics,
		invoices:      deps.Invoices,
		companies:     deps.Companies,
		estimator:     deps.Estimator,
		logger:        deps.Logger,
		AuditManager:  NewAuditManager(2, 5, 500*time.Millisecond, deps.Logger),
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("http server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	// Endpoints outside basic auth: public tracking, the per-company ERP
	// webhook (secret header instead) and prometheus scraping.
	router.HandleFunc("/track/{trackingNumber}", s.handleTrackShipment).Methods(http.MethodGet)
	router.HandleFunc("/webhooks/erp", s.handleErpWebhook).Methods(http.MethodPost)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/freight/calculate", s.handleCalculateQuotes).Methods(http.MethodPost)
	api.HandleFunc("/freight/vendors", s.handleActiveVendors).Methods(http.MethodGet)

	api.HandleFunc("/shipments", s.handleCreateShipment).Methods(http.MethodPost)
	api.HandleFunc("/shipments", s.handleListShipments).Methods(http.MethodGet)
	api.HandleFunc("/shipments/{id}", s.handleGetShipment).Methods(http.MethodGet)
	api.HandleFunc("/shipments/{id}/status", s.handleUpdateShipmentStatus).Methods(http.MethodPut)

	api.HandleFunc("/vendors", s.handleCreateVendor).Methods(http.MethodPost)
	api.HandleFunc("/vendors", s.handleListVendors).Methods(http.MethodGet)
	api.HandleFunc("/vendors/{id}", s.handleUpdateVendor).Methods(http.MethodPut)

	api.HandleFunc("/analytics/overview", s.handleAnalyticsOverview).Methods(http.MethodGet)
	api.HandleFunc("/analytics/export", s.handleAnalyticsExport).Methods(http.MethodGet)

	return s.auditLogMiddleware(router)
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := s.users.Authenticate(r.Context(), email, password)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		identity := auth.Identity{
			UserID:    user.ID,
			CompanyID: user.CompanyID,
			Role:      auth.Role(user.Role),
			Email:     user.Email,
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
