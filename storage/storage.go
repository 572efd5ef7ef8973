// Package storage abstracts the blob store holding the image bytes. The
// stored name is the join key with the images collection, so callers must
// write under exactly the name they record.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Read when no blob exists under the name.
var ErrNotFound = errors.New("storage: file not found")

type Store interface {
	// Exists reports whether a blob is already stored under name.
	Exists(ctx context.Context, name string) (bool, error)
	// Write stores the full content of r under name, overwriting nothing
	// only by virtue of the caller having resolved a free name first.
	Write(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	// Read returns the full blob content.
	Read(ctx context.Context, name string) ([]byte, error)
}
