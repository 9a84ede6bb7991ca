package domain

import "context"

const (
	UploadKindLogo   = "logo"
	UploadKindAvatar = "avatar"
)

// ObjectStore persists uploaded objects and returns their public URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type UploadUsecase interface {
	UploadImage(ctx context.Context, actor Actor, kind string, data []byte) (string, error)
}
