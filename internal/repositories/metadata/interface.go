// Package metadata implements a small key-value store on the local database.
// The client keeps its single persistent slots (currently only the session
// token) here.
package metadata

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
