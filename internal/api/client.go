// Package api talks to the remote mydiary service over JSON/HTTP.
//
// Every operation reports failure through the single ErrRequestFailed
// channel: callers cannot (and do not need to) distinguish a network error
// from a server rejection from a malformed payload. The wrapped message
// carries the human-readable reason shown to the user.
package api

import (
	"context"
	"errors"

	"github.com/jbsipayung/mydiary-cli/internal/models"
)

// ErrRequestFailed is the only failure the client surfaces. Match with
// errors.Is; the wrapped text explains what went wrong.
var ErrRequestFailed = errors.New("request failed")

// Client is one operation per resource action of the mydiary service.
type Client interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates a new account.
	Register(ctx context.Context, name, email, password string) error

	// ListDiaries returns every entry owned by userID.
	ListDiaries(ctx context.Context, userID int) ([]models.Diary, error)

	// CreateDiary writes a new entry for userID.
	CreateDiary(ctx context.Context, userID int, title, body string) error

	// GetDiary fetches a single entry by id.
	GetDiary(ctx context.Context, id int) (models.Diary, error)

	// UpdateDiary replaces title and body of the entry id owned by userID.
	UpdateDiary(ctx context.Context, id, userID int, title, body string) error

	// DeleteDiary removes the entry by id.
	DeleteDiary(ctx context.Context, id int) error
}
