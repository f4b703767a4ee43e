package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/repository"
)

type VendorRepo struct {
	db db.DB
}

func NewVendorRepo(db db.DB) *VendorRepo {
	return &VendorRepo{db: db}
}

func (r *VendorRepo) Create(ctx context.Context, v *repository.Vendor) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO vendors (
            name, email, phone, base_rate, rating, speed, is_active, company_id, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `, v.Name, v.Email, v.Phone, v.BaseRate, v.Rating, v.Speed, v.IsActive, v.CompanyID, v.CreatedAt, v.UpdatedAt).Scan(&id)
	return id, err
}

func (r *VendorRepo) Update(ctx context.Context, v *repository.Vendor) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE vendors
        SET name = $1, email = $2, phone = $3, base_rate = $4, rating = $5,
            speed = $6, is_active = $7, updated_at = $8
        WHERE id = $9
    `, v.Name, v.Email, v.Phone, v.BaseRate, v.Rating, v.Speed, v.IsActive, v.UpdatedAt, v.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *VendorRepo) GetByID(ctx context.Context, id int64) (*repository.Vendor, error) {
	var v repository.Vendor
	err := r.db.Get(ctx, &v, "SELECT * FROM vendors WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepo) GetActive(ctx context.Context, companyID int64) ([]*repository.Vendor, error) {
	var vendors []*repository.Vendor
	err := r.db.Select(ctx, &vendors, `
        SELECT * FROM vendors
        WHERE company_id = $1 AND is_active = true
        ORDER BY id ASC
    `, companyID)
	return vendors, err
}

func (r *VendorRepo) List(ctx context.Context, companyID int64) ([]*repository.Vendor, error) {
	var vendors []*repository.Vendor
	err := r.db.Select(ctx, &vendors, `
        SELECT * FROM vendors
        WHERE company_id = $1
        ORDER BY name ASC
    `, companyID)
	return vendors, err
}
