package blob

import (
	"context"
	"io"
)

// Store is the file/blob boundary: callers hand over bytes once and keep
// only the returned URL.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}
