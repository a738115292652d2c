// Package cli implements the interactive Tastebook client: a REPL gated on
// the session state, with one command handler per screen.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"tastebook/internal/client/api"
	"tastebook/internal/client/config"
	"tastebook/internal/client/models"
	"tastebook/internal/client/services"
	"tastebook/internal/client/session"
	"tastebook/internal/client/storage"
	"tastebook/internal/logging"
)

// App wires the services behind the REPL and carries per-screen transient
// state (the last listed recipes, used to address a recipe by number).
type App struct {
	config   *config.Config
	log      logging.Logger
	sessions session.Store

	auth    services.AuthService
	recipes services.RecipeService
	reviews services.ReviewService

	reader *bufio.Reader

	// lastList holds the most recent browse result so "review <n>" can
	// refer to a recipe by its printed number.
	lastList []models.Recipe
}

// NewApp opens the local session database, hydrates the session, and wires
// the request pipeline and services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}

	sessions := session.NewSQLiteStore(db)
	if _, err := sessions.Hydrate(ctx); err != nil {
		return nil, fmt.Errorf("hydrating session: %w", err)
	}

	apiClient, err := api.NewHTTPClient(cfg.ServerBaseURL, sessions, log, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   cfg,
		log:      log,
		sessions: sessions,
		auth:     services.NewAuthService(apiClient, sessions, log),
		recipes:  services.NewRecipeService(apiClient, sessions, log),
		reviews:  services.NewReviewService(apiClient, sessions, log),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return !a.sessions.Current().IsAnonymous()
}

func (a *App) getStatus() string {
	if sess := a.sessions.Current(); !sess.IsAnonymous() {
		return fmt.Sprintf("(%s)", sess.UserID)
	}
	return "(anonymous)"
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to Tastebook (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
