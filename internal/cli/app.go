package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/jbsipayung/mydiary-cli/internal/api"
	"github.com/jbsipayung/mydiary-cli/internal/config"
	"github.com/jbsipayung/mydiary-cli/internal/logging"
	"github.com/jbsipayung/mydiary-cli/internal/models"
	"github.com/jbsipayung/mydiary-cli/internal/repositories/metadata"
	"github.com/jbsipayung/mydiary-cli/internal/session"
)

// App wires the screens to the API client and the session store. The session
// is passed explicitly through App rather than living in package-level state.
type App struct {
	config *config.Config
	api    api.Client
	store  session.Store
	log    logging.Logger
	reader *bufio.Reader
	db     *sql.DB

	// screen state, owned by the flow goroutine
	identity session.Identity
	diaries  []models.Diary
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	return &App{
		config: cfg,
		api:    api.NewHTTPClient(cfg.ServerBaseURL, log),
		store:  session.NewSQLiteStore(metadata.NewSQLiteRepository(db)),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		db:     db,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// loadIdentity recovers the user id and display name from the stored token.
// A missing or undecodable token degrades to a zero identity; the screen
// still renders.
func (a *App) loadIdentity(ctx context.Context) {
	token, err := a.store.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load session token", "error", err)
	}

	id, err := session.Claims(token)
	if err != nil {
		a.log.Warn(ctx, "failed to decode session token", "error", err)
		id = session.Identity{}
	}
	a.identity = id
}
