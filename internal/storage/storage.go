package storage

import (
	"context"
	"io"
	"time"
)

// Uploader stores resume files as private objects and returns the stored
// object name.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

// Signer issues short-lived download URLs for private objects.
type Signer interface {
	SignedGetURL(ctx context.Context, objectName string, ttl time.Duration) (string, error)
}
