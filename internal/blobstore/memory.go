package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Compile-time check that Memory implements Store.
var _ Store = (*Memory)(nil)

// Memory is an in-memory Store used in tests. Puts record the uploaded
// bytes; List returns objects in insertion order. PutErr and ListErr, when
// set, force the corresponding call to fail.
type Memory struct {
	mu      sync.Mutex
	objects []Object
	data    map[string][]byte

	PutErr  error
	ListErr error

	// Now supplies creation timestamps; defaults to time.Now.
	Now func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Put records data under key and returns a synthetic public URL.
func (s *Memory) Put(ctx context.Context, key string, data io.Reader, size int64, contentType string) (string, error) {
	if s.PutErr != nil {
		return "", s.PutErr
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return "", fmt.Errorf("reading data for %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	s.objects = append(s.objects, Object{
		Key:       key,
		URL:       "https://blobs.test/" + key,
		CreatedAt: now,
	})
	s.data[key] = b
	return "https://blobs.test/" + key, nil
}

// List returns recorded objects whose key starts with prefix, in
// insertion order.
func (s *Memory) List(ctx context.Context, prefix string) ([]Object, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Object
	for _, obj := range s.objects {
		if strings.HasPrefix(obj.Key, prefix) {
			out = append(out, obj)
		}
	}
	return out, nil
}

// Get returns the bytes recorded for key.
func (s *Memory) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data[key]
	return b, ok
}

// Keys returns all recorded keys in insertion order.
func (s *Memory) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.objects))
	for _, obj := range s.objects {
		keys = append(keys, obj.Key)
	}
	return keys
}

// Seed records an object without content, for listing tests.
func (s *Memory) Seed(key string, createdAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, Object{
		Key:       key,
		URL:       "https://blobs.test/" + key,
		CreatedAt: createdAt,
	})
}
