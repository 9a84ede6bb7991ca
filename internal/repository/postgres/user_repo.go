package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// insertUserQuery is idempotent on id so concurrent first requests of the same
// user do not fail. An empty email is stored as NULL; only non-null emails are unique.
const insertUserQuery = `INSERT INTO users (id, email, role, created_at, updated_at)
              VALUES ($1, NULLIF($2, ''), $3, $4, $5)
              ON CONFLICT (id) DO NOTHING`

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, insertUserQuery, user.ID, user.Email, user.Role, user.CreatedAt, user.UpdatedAt)
	return mapError(err, "User with this email already exists")
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, COALESCE(email, ''), role, created_at, updated_at FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "")
	}
	return &user, nil
}

func (r *userRepo) UpdateRole(ctx context.Context, id string, role string) error {
	result, err := r.db.Exec(ctx, `UPDATE users SET role = $2, updated_at = now() WHERE id = $1`, id, role)
	if err != nil {
		return mapError(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
