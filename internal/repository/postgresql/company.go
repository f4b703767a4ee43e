package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/repository"
)

type CompanyRepo struct {
	db db.DB
}

func NewCompanyRepo(db db.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*repository.Company, error) {
	var c repository.Company
	err := r.db.Get(ctx, &c, "SELECT * FROM companies WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &c, nil
}
