// Package upload validates and persists multipart image uploads and cleans
// up stored files that content records no longer reference.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedType = errors.New("file type not allowed")
	ErrTooLarge        = errors.New("file exceeds maximum allowed size")
)

const DefaultMaxBytes = 5 * 1024 * 1024

// DefaultAllowedTypes is the image allow-list used when none is configured.
var DefaultAllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Uploader writes validated uploads into a single destination directory.
// Construct one per content type so each resource gets its own subdirectory.
type Uploader struct {
	dir      string
	maxBytes int64
	allowed  map[string]bool
}

func NewUploader(dir string, maxBytes int64, allowedTypes []string) *Uploader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if len(allowedTypes) == 0 {
		allowedTypes = DefaultAllowedTypes
	}

	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = true
	}

	return &Uploader{
		dir:      dir,
		maxBytes: maxBytes,
		allowed:  allowed,
	}
}

// Save validates the upload against the declared MIME type and size, then
// writes it under a generated collision-resistant name. Validation failures
// happen before anything touches disk. Returns the stored filename.
func (u *Uploader) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if !u.allowed[contentType] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	if header.Size > u.maxBytes {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, header.Size, u.maxBytes)
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	name := generateName(header.Filename)
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	// Guard against a declared size smaller than the actual stream.
	written, err := io.Copy(dst, io.LimitReader(file, u.maxBytes+1))
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if written > u.maxBytes {
		os.Remove(dst.Name())
		return "", fmt.Errorf("%w: stream exceeded %d bytes", ErrTooLarge, u.maxBytes)
	}

	return name, nil
}

// MaxBytes returns the configured size limit.
func (u *Uploader) MaxBytes() int64 {
	return u.maxBytes
}

// generateName combines a nanosecond timestamp with a random component so two
// uploads landing in the same instant still get distinct names.
func generateName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String()[:8], ext)
}
