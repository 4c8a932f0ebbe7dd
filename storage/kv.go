package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is the abstract key-value store drafts and templates are persisted to.
// Implementations: GormKV (sqlite/postgres) and RedisKV.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
