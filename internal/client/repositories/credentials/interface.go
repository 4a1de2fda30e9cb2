package credentials

import (
	"context"
	"errors"
	"fmt"
)

// ErrStorage matches every *StorageError via errors.Is.
var ErrStorage = errors.New("credential storage error")

// Repository is a per-key persistent string store. Calls are independent:
// there is no multi-key transaction.
type Repository interface {
	// Get returns ("", false, nil) when key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Remove of an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// StorageError is returned by every backend when the underlying storage
// fails.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s credential[%s]: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func storageErr(op, key string, err error) error {
	return &StorageError{Op: op, Key: key, Err: err}
}
