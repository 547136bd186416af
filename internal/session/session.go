// Package session persists the service-issued token and recovers the user's
// identity from its claims.
//
// The token is opaque to the rest of the client: it is saved verbatim after a
// successful login and trusted until the server rejects a request that uses
// it. There is no expiry check and no refresh.
package session

import (
	"context"
	"errors"

	"github.com/jbsipayung/mydiary-cli/internal/repositories/metadata"
)

// ErrDecode reports a token that is malformed or missing expected claims.
// Callers fall back to a zero Identity and keep going.
var ErrDecode = errors.New("token decode failed")

// Identity is the user information carried inside the token.
type Identity struct {
	UserID int
	Name   string
}

// Store is the single persistent token slot. Save overwrites unconditionally;
// Load returns the empty string when nothing has been saved yet.
type Store interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
}

const tokenKey = "token"

// SQLiteStore keeps the token in the metadata table of the local database so
// it survives restarts.
type SQLiteStore struct {
	meta metadata.Repository
}

func NewSQLiteStore(meta metadata.Repository) *SQLiteStore {
	return &SQLiteStore{meta: meta}
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	return s.meta.Set(ctx, tokenKey, []byte(token))
}

func (s *SQLiteStore) Load(ctx context.Context) (string, error) {
	v, err := s.meta.Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}
