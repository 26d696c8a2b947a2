package ports

import (
	"context"
	"io"
)

// ImageStore uploads an image payload and returns a stable public URL.
// Implementations reject disallowed extensions and oversized payloads with
// domain.ErrImageTypeNotAllowed / domain.ErrImageTooLarge before any
// network call.
type ImageStore interface {
	Upload(ctx context.Context, filename string, content io.Reader, size int64) (string, error)
}
