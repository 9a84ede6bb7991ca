package usecase

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// paginate clamps page parameters and returns limit and offset.
func paginate(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageSize, (page - 1) * pageSize
}

func requireUser(actor domain.Actor) error {
	if actor.UserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	return nil
}

// validationError turns validator output into a 400 naming the first bad field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperror.New(http.StatusBadRequest, "Invalid value for field '"+fe.Field()+"' ("+fe.Tag()+")", err)
	}
	return apperror.BadRequest(err.Error())
}

// notFoundAs replaces domain.ErrNotFound with a 404 carrying msg.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	return err
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
