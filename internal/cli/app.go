// Package cli is the interactive shell over the campuspark client core.
// It owns the composition root: database, stores, API client and services
// are wired here and the REPL dispatches into them.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/levietphu/campuspark/internal/api"
	"github.com/levietphu/campuspark/internal/config"
	"github.com/levietphu/campuspark/internal/endpoint"
	"github.com/levietphu/campuspark/internal/fallback"
	"github.com/levietphu/campuspark/internal/logging"
	"github.com/levietphu/campuspark/internal/services"
	"github.com/levietphu/campuspark/internal/session"
	"github.com/levietphu/campuspark/internal/storage"
	"github.com/levietphu/campuspark/internal/storage/kv"
	"gopkg.in/natefinch/lumberjack.v2"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	auth      services.AuthService
	accounts  services.AccountService
	endpoints *endpoint.Store
	log       logging.Logger
	reader    *bufio.Reader
}

// newLogger builds the slog-backed logger. With a log file configured the
// output rotates via lumberjack; otherwise it goes to stderr.
func newLogger(cfg *config.Config) logging.Logger {
	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: logging.ParseLevel(cfg.LogLevel)})
	return logging.NewSlogLogger(slog.New(handler))
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := newLogger(cfg)

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	repo := kv.NewSQLiteRepository(db)
	endpoints := endpoint.NewStore(repo, cfg.DefaultBaseURL)
	sessions := session.NewStore(db)
	demo := fallback.NewDataset()

	client := api.NewHTTPClient(endpoints, sessions, log)

	auth := services.NewAuthService(client, sessions, demo, log)
	auth.Restore(ctx)

	accounts := services.NewAccountService(client, sessions, demo, log)

	return &App{
		config:    cfg,
		auth:      auth,
		accounts:  accounts,
		endpoints: endpoints,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isSignedIn() bool {
	return a.auth.IsSignedIn()
}
