package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, http.StatusConflict, apperror.CodeOf(apperror.Conflict("dup")))
	assert.Equal(t, http.StatusNotFound, apperror.CodeOf(fmt.Errorf("wrapped: %w", apperror.NotFound("x"))))
	assert.Equal(t, http.StatusInternalServerError, apperror.CodeOf(errors.New("boom")))
}

func TestUnwrap(t *testing.T) {
	root := errors.New("dial tcp: refused")
	err := apperror.ServiceUnavailable("No wallet provider configured", root)
	assert.ErrorIs(t, err, root)
	assert.Equal(t, "No wallet provider configured", err.Error())
}
