package usecase

import (
	"context"
	"errors"
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/google/uuid"
)

const (
	maxUploadBytes  = 5 << 20
	logoDimension   = 512
	imageDimension  = 1200
	jpegQuality     = 85
	jpegContentType = "image/jpeg"
)

type uploadUsecase struct {
	store domain.ObjectStore
}

// NewUploadUsecase accepts a nil store; uploads then fail with 503.
func NewUploadUsecase(store domain.ObjectStore) domain.UploadUsecase {
	return &uploadUsecase{store: store}
}

func (u *uploadUsecase) UploadImage(ctx context.Context, actor domain.Actor, kind string, data []byte) (string, error) {
	if err := requireUser(actor); err != nil {
		return "", err
	}

	maxDim := imageDimension
	switch kind {
	case domain.UploadKindLogo:
		if !actor.HasRole(domain.RoleEmployer) {
			return "", apperror.Forbidden("Only employers can upload company logos")
		}
		maxDim = logoDimension
	case domain.UploadKindAvatar:
	default:
		return "", apperror.BadRequest("kind must be 'logo' or 'avatar'")
	}

	if len(data) == 0 {
		return "", apperror.BadRequest("File is empty")
	}
	if len(data) > maxUploadBytes {
		return "", apperror.BadRequest("File exceeds 5MB limit")
	}
	if u.store == nil {
		return "", apperror.ServiceUnavailable("Object storage not configured", storage.ErrNotConfigured)
	}

	compressed, err := storage.CompressImage(data, maxDim, jpegQuality)
	if err != nil {
		if errors.Is(err, storage.ErrNotImage) {
			return "", apperror.BadRequest("File must be a PNG or JPEG image")
		}
		return "", err
	}

	key := kind + "/" + uuid.NewString() + ".jpg"
	url, err := u.store.Put(ctx, key, jpegContentType, compressed)
	if err != nil {
		return "", apperror.New(http.StatusBadGateway, "Failed to store upload", err)
	}
	return url, nil
}
