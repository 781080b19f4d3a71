// Package kv defines the key-value medium that record and session stores
// persist whole serialized collections into.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("kv: key not found")

// Backend stores opaque blobs under string keys. Implementations overwrite
// unconditionally on Set; there is no compare-and-swap.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}
