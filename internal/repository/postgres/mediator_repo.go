package postgres

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const mediatorColumns = `id::text, email, phone_number, names, wallet_address, status, created_at, updated_at`

type mediatorRepo struct {
	db *pgxpool.Pool
}

func NewMediatorRepository(db *pgxpool.Pool) domain.MediatorRepository {
	return &mediatorRepo{db: db}
}

func scanMediator(row pgx.Row) (*domain.Mediator, error) {
	var m domain.Mediator
	err := row.Scan(&m.ID, &m.Email, &m.PhoneNumber, &m.Names, &m.WalletAddress, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediatorRepo) Create(ctx context.Context, m *domain.Mediator) error {
	query := `INSERT INTO mediators (id, email, phone_number, names, wallet_address, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.Email, m.PhoneNumber, m.Names, m.WalletAddress, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	return mapError(err, "Mediator with this email already exists")
}

func (r *mediatorRepo) GetByID(ctx context.Context, id string) (*domain.Mediator, error) {
	query := `SELECT ` + mediatorColumns + ` FROM mediators WHERE id = $1`
	m, err := scanMediator(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "")
	}
	return m, nil
}

func (r *mediatorRepo) List(ctx context.Context, filter domain.MediatorFilter) ([]domain.Mediator, int64, error) {
	where := ""
	args := []interface{}{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM mediators`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM mediators%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		mediatorColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	mediators := []domain.Mediator{}
	for rows.Next() {
		m, err := scanMediator(rows)
		if err != nil {
			return nil, 0, err
		}
		mediators = append(mediators, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return mediators, total, nil
}

func (r *mediatorRepo) Update(ctx context.Context, m *domain.Mediator) error {
	query := `UPDATE mediators SET
		email = $2,
		phone_number = $3,
		names = $4,
		wallet_address = $5,
		updated_at = $6
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query, m.ID, m.Email, m.PhoneNumber, m.Names, m.WalletAddress, m.UpdatedAt)
	if err != nil {
		return mapError(err, "Mediator with this email already exists")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mediatorRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE mediators SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return mapError(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *mediatorRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM mediators WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
