package postgres

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// mapError translates driver errors into domain and HTTP-aware errors.
// conflictMsg is used for unique violations.
func mapError(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.New(http.StatusConflict, conflictMsg, err)
		case pgForeignKeyViolation:
			return apperror.New(http.StatusBadRequest, "Referenced record does not exist", err)
		case pgCheckViolation:
			return apperror.New(http.StatusBadRequest, "Value violates a data constraint", err)
		}
	}
	return err
}

// isPgCode reports whether err carries the given SQLSTATE.
func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
