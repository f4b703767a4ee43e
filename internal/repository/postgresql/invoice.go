package postgresql

import (
	"context"

	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/repository"
)

type InvoiceRepo struct {
	db db.DB
}

func NewInvoiceRepo(db db.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

func (r *InvoiceRepo) ListForExport(ctx context.Context, companyID int64) ([]*repository.Invoice, error) {
	var invoices []*repository.Invoice
	err := r.db.Select(ctx, &invoices, `
        SELECT * FROM invoices
        WHERE company_id = $1
        ORDER BY issued_at DESC NULLS LAST
    `, companyID)
	return invoices, err
}
