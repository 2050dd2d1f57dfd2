package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Raghuramreddyu/House-Rental-System/internal/domain"
	"github.com/google/uuid"
)

// publicPrefix is the path segment stored on house documents and served
// statically by the router.
const publicPrefix = "uploads"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// DiskImageStore writes uploaded images to a local directory under
// random names, keeping the original extension for content-type sniffing
// by the static file server.
type DiskImageStore struct {
	dir string
}

func NewDiskImageStore(dir string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskImageStore{dir: dir}, nil
}

func (s *DiskImageStore) Save(_ context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: unsupported image type %q", domain.ErrValidation, ext)
	}

	name := uuid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return path.Join(publicPrefix, name), nil
}

// Remove deletes a stored image. A reference that no longer resolves to a
// file is not an error.
func (s *DiskImageStore) Remove(_ context.Context, ref string) error {
	err := os.Remove(filepath.Join(s.dir, path.Base(ref)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}
