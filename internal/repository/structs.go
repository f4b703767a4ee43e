package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("not found")

type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "PENDING"
	StatusRequested ShipmentStatus = "REQUESTED"
	StatusAssigned  ShipmentStatus = "ASSIGNED"
	StatusAccepted  ShipmentStatus = "ACCEPTED"
	StatusPickedUp  ShipmentStatus = "PICKED_UP"
	StatusInTransit ShipmentStatus = "IN_TRANSIT"
	StatusDelivered ShipmentStatus = "DELIVERED"
)

type Shipment struct {
	ID                string         `db:"id" json:"id"`
	TrackingNumber    string         `db:"tracking_number" json:"trackingNumber"`
	FromLocation      string         `db:"from_location" json:"fromLocation"`
	ToLocation        string         `db:"to_location" json:"toLocation"`
	FromLat           *float64       `db:"from_lat" json:"fromLat,omitempty"`
	FromLng           *float64       `db:"from_lng" json:"fromLng,omitempty"`
	ToLat             *float64       `db:"to_lat" json:"toLat,omitempty"`
	ToLng             *float64       `db:"to_lng" json:"toLng,omitempty"`
	Weight            float64        `db:"weight" json:"weight"`
	ShipmentType      string         `db:"shipment_type" json:"shipmentType"`
	Urgency           string         `db:"urgency" json:"urgency"`
	Cost              float64        `db:"cost" json:"cost"`
	Distance          float64        `db:"distance" json:"distance"`
	EstimatedDelivery time.Time      `db:"estimated_delivery" json:"estimatedDelivery"`
	Status            ShipmentStatus `db:"status" json:"status"`
	UserID            int64          `db:"user_id" json:"userId"`
	CompanyID         int64          `db:"company_id" json:"companyId"`
	VendorID          int64          `db:"vendor_id" json:"vendorId"`
	QuoteRequestID    *int64         `db:"quote_request_id" json:"quoteRequestId,omitempty"`
	Source            string         `db:"source" json:"source"`
	CreatedAt         time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updatedAt"`
}

type StatusHistoryEntry struct {
	ID         int64          `db:"id" json:"id"`
	ShipmentID string         `db:"shipment_id" json:"shipmentId"`
	Status     ShipmentStatus `db:"status" json:"status"`
	Notes      string         `db:"notes" json:"notes,omitempty"`
	Location   string         `db:"location" json:"location,omitempty"`
	UpdatedBy  int64          `db:"updated_by" json:"updatedBy"`
	Timestamp  time.Time      `db:"timestamp" json:"timestamp"`
}

type Vendor struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email,omitempty"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	BaseRate  float64   `db:"base_rate" json:"baseRate"`
	Rating    float64   `db:"rating" json:"rating"`
	Speed     float64   `db:"speed" json:"speed"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CompanyID int64     `db:"company_id" json:"companyId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type QuoteRequestStatus string

const (
	QuoteRequested QuoteRequestStatus = "REQUESTED"
	QuoteResponded QuoteRequestStatus = "RESPONDED"
	QuoteApproved  QuoteRequestStatus = "APPROVED"
	QuoteClosed    QuoteRequestStatus = "CLOSED"
)

type QuoteRequest struct {
	ID           int64              `db:"id" json:"id"`
	UserID       int64              `db:"user_id" json:"userId"`
	CompanyID    int64              `db:"company_id" json:"companyId"`
	FromLocation string             `db:"from_location" json:"fromLocation"`
	ToLocation   string             `db:"to_location" json:"toLocation"`
	Weight       float64            `db:"weight" json:"weight"`
	ShipmentType string             `db:"shipment_type" json:"shipmentType"`
	Urgency      string             `db:"urgency" json:"urgency"`
	Status       QuoteRequestStatus `db:"status" json:"status"`
	CreatedAt    time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `db:"updated_at" json:"updatedAt"`
}

type InvoiceStatus string

const (
	InvoiceDraft  InvoiceStatus = "DRAFT"
	InvoiceIssued InvoiceStatus = "ISSUED"
	InvoicePaid   InvoiceStatus = "PAID"
)

type Invoice struct {
	ID            int64         `db:"id"`
	InvoiceNumber string        `db:"invoice_number"`
	ShipmentID    *string       `db:"shipment_id"`
	CompanyID     int64         `db:"company_id"`
	Status        InvoiceStatus `db:"status"`
	GrandTotal    float64       `db:"grand_total"`
	IssuedAt      *time.Time    `db:"issued_at"`
	DueDate       *time.Time    `db:"due_date"`
}

type User struct {
	ID             int64      `db:"id" json:"id"`
	Email          string     `db:"email" json:"email"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	Name           string     `db:"name" json:"name"`
	Role           string     `db:"role" json:"role"`
	CompanyID      int64      `db:"company_id" json:"companyId"`
	IsActive       bool       `db:"is_active" json:"isActive"`
	ApprovalStatus string     `db:"approval_status" json:"approvalStatus"`
	LastLoginAt    *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

type Company struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	WebhookSecret string    `db:"webhook_secret"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
}

// Aggregate row shapes returned by the analytics queries.

type StatusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

type InvoiceTotal struct {
	Status string  `db:"status"`
	Count  int64   `db:"count"`
	Total  float64 `db:"total"`
}

type VendorRollup struct {
	VendorID       int64   `db:"vendor_id"`
	Name           string  `db:"name"`
	Rating         float64 `db:"rating"`
	IsActive       bool    `db:"is_active"`
	TotalShipments int64   `db:"total_shipments"`
	Delivered      int64   `db:"delivered"`
	AvgCost        float64 `db:"avg_cost"`
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusDone       TaskStatus = "DONE"
	TaskStatusFailed     TaskStatus = "FAILED"
)

type OutboxTask struct {
	ID          uuid.UUID  `db:"id"`
	Status      TaskStatus `db:"status"`
	Payload     []byte     `db:"payload"`
	Topic       string     `db:"topic"`
	Attempts    int        `db:"attempts"`
	LastError   *string    `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	CompletedAt *time.Time `db:"completed_at"`
}
