package blobstore

import (
	"context"
	"io"
	"time"
)

// Object describes a stored blob as surfaced by List.
type Object struct {
	Key       string
	URL       string
	CreatedAt time.Time
}

// Store defines the interface for the durable image blob store. Objects
// are publicly readable as soon as Put returns; nothing in this system
// updates or deletes them.
type Store interface {
	// Put uploads data under key and returns the object's public URL.
	Put(ctx context.Context, key string, data io.Reader, size int64, contentType string) (string, error)

	// List returns every object whose key starts with prefix. The
	// listing is not paginated; it is sized for a booth gallery (two
	// objects per transform), not arbitrary namespaces.
	List(ctx context.Context, prefix string) ([]Object, error)
}
