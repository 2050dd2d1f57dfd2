package ports

import (
	"context"
	"mime/multipart"
)

// ImageStore keeps uploaded house images. Paths are relative storage
// references as persisted on the house document.
type ImageStore interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, path string) error
}
