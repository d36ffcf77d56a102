// Package cli is the interactive front-end of the grocery tracking
// client. It is a thin layer over the services: prompts, a command
// loop, and confirm flows for destructive operations.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	_ "modernc.org/sqlite"

	"github.com/freshtrack/freshtrack/internal/api"
	"github.com/freshtrack/freshtrack/internal/config"
	"github.com/freshtrack/freshtrack/internal/logging"
	"github.com/freshtrack/freshtrack/internal/service"
	"github.com/freshtrack/freshtrack/internal/store"
)

type App struct {
	config    *config.Config
	manager   *service.Manager
	inventory *service.Inventory
	matcher   *service.RecipeMatcher
	log       logging.Logger
	db        *sql.DB
	reader    *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, c.CredentialDBPath)
	if err != nil {
		log.Error(ctx, "error initializing credential database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerEndpointURL, c.RequestTimeout)

	inv := service.NewInventory(apiClient, log)
	matcher := service.NewRecipeMatcher(apiClient, inv)
	manager := service.NewManager(apiClient, store.NewSQLiteStore(db), inv, matcher, log)

	return &App{
		config:    c,
		manager:   manager,
		inventory: inv,
		matcher:   matcher,
		log:       log,
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.manager.Session().Active()
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}
