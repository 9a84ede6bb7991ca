package postgres

import (
	"errors"
	"net/http"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil, "dup"))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows, "dup"), domain.ErrNotFound)

	dup := mapError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_saved_jobs_employee_posting"}, "Job already saved")
	assert.Equal(t, http.StatusConflict, apperror.CodeOf(dup))
	assert.Equal(t, "Job already saved", dup.Error())

	fk := mapError(&pgconn.PgError{Code: pgForeignKeyViolation}, "dup")
	assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(fk))

	check := mapError(&pgconn.PgError{Code: pgCheckViolation}, "dup")
	assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(check))

	other := errors.New("connection reset")
	assert.Same(t, other, mapError(other, "dup"))
}

func TestIsPgCode(t *testing.T) {
	assert.True(t, isPgCode(&pgconn.PgError{Code: pgForeignKeyViolation}, pgForeignKeyViolation))
	assert.False(t, isPgCode(errors.New("x"), pgForeignKeyViolation))
}
