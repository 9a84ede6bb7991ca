package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) get(ctx context.Context, where string, arg interface{}) (*domain.Employer, error) {
	query := `SELECT id, user_id, company_name, website, logo_url, wallet_address, created_at, updated_at
	          FROM employers WHERE ` + where
	var e domain.Employer
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&e.ID, &e.UserID, &e.CompanyName, &e.Website, &e.LogoURL, &e.WalletAddress, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "")
	}
	return &e, nil
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID string) (*domain.Employer, error) {
	return r.get(ctx, "user_id = $1", userID)
}

func (r *employerRepo) Upsert(ctx context.Context, e *domain.Employer) error {
	query := `
		INSERT INTO employers (user_id, company_name, website, logo_url, wallet_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			website = EXCLUDED.website,
			logo_url = EXCLUDED.logo_url,
			wallet_address = EXCLUDED.wallet_address,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		e.UserID, e.CompanyName, e.Website, e.LogoURL, e.WalletAddress, e.UpdatedAt,
	).Scan(&e.ID, &e.CreatedAt)
	return mapError(err, "Employer profile already exists")
}
