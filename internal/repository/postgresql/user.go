package postgresql

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jackc/pgx/v4"

	"github.com/freightworks/freight-backend/internal/db"
	"github.com/freightworks/freight-backend/internal/repository"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *repository.User, password string) (int64, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.ExecQueryRow(ctx, `
        INSERT INTO users (
            email, password_hash, name, role, company_id, is_active, approval_status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `, u.Email, string(hashed), u.Name, u.Role, u.CompanyID, u.IsActive, u.ApprovalStatus, time.Now().UTC()).Scan(&id)
	return id, err
}

// Authenticate checks credentials and returns the user on success. The
// last-login stamp is touched best-effort; a failed touch never blocks the
// login.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (*repository.User, error) {
	var u repository.User
	err := r.db.Get(ctx, &u, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, repository.ErrObjectNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, repository.ErrObjectNotFound
	}

	_, _ = r.db.Exec(ctx, "UPDATE users SET last_login_at = $1 WHERE id = $2", time.Now().UTC(), u.ID)

	return &u, nil
}

func (r *UserRepo) ListByCompany(ctx context.Context, companyID int64) ([]*repository.User, error) {
	var users []*repository.User
	err := r.db.Select(ctx, &users, `
        SELECT * FROM users
        WHERE company_id = $1
        ORDER BY id ASC
    `, companyID)
	return users, err
}

// FirstCompanyActor resolves the acting user for webhook-originated writes:
// an active company admin when one exists, otherwise any active user.
func (r *UserRepo) FirstCompanyActor(ctx context.Context, companyID int64) (*repository.User, error) {
	var u repository.User
	err := r.db.Get(ctx, &u, `
        SELECT * FROM users
        WHERE company_id = $1 AND is_active = true
        ORDER BY CASE WHEN role IN ('COMPANY_ADMIN', 'SUPER_ADMIN') THEN 0 ELSE 1 END, id ASC
        LIMIT 1
    `, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &u, nil
}
