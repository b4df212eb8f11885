package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a key has never been written or was deleted.
	ErrNotFound = errors.New("blob not found")
	// ErrStoreUnavailable wraps network and auth failures reaching the backend.
	ErrStoreUnavailable = errors.New("blob store unavailable")
	// ErrInvalidKey rejects keys that would escape the flat namespace.
	ErrInvalidKey = errors.New("invalid blob key")
)

// BlobStore is a flat key to bytes store with whole-object semantics.
// Implementations carry no business meaning: a ledger, the shop config and the
// menu are all just keys.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]string, error)
	Stat(ctx context.Context, key string) (time.Time, error)
}

// ValidateKey accepts plain file names only.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func unavailable(op, key string, err error) error {
	if key == "" {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s %s: %v", ErrStoreUnavailable, op, key, err)
}

func notFound(key string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, key)
}
