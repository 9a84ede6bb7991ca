package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const employeeColumns = `id, user_id, names, email, phone_number, wallet_address, skills, created_at, updated_at`

type employeeRepo struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) domain.EmployeeRepository {
	return &employeeRepo{db: db}
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	var skills []string
	err := row.Scan(&e.ID, &e.UserID, &e.Names, &e.Email, &e.PhoneNumber, &e.WalletAddress,
		pq.Array(&skills), &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Skills = skills
	if e.Skills == nil {
		e.Skills = []string{}
	}
	return &e, nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "")
	}
	return e, nil
}

func (r *employeeRepo) GetByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE user_id = $1`, userID))
	if err != nil {
		return nil, mapError(err, "")
	}
	return e, nil
}

func (r *employeeRepo) Upsert(ctx context.Context, e *domain.Employee) error {
	query := `
		INSERT INTO employees (user_id, names, email, phone_number, wallet_address, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			names = EXCLUDED.names,
			email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number,
			wallet_address = EXCLUDED.wallet_address,
			skills = EXCLUDED.skills,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		e.UserID, e.Names, e.Email, e.PhoneNumber, e.WalletAddress, pq.Array(e.Skills), e.UpdatedAt,
	).Scan(&e.ID, &e.CreatedAt)
	return mapError(err, "Employee profile already exists")
}
