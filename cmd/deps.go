package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/scholar/internal/audit"
	"github.com/abhisek/scholar/internal/auth"
	"github.com/abhisek/scholar/internal/backend"
	"github.com/abhisek/scholar/internal/config"
	"github.com/abhisek/scholar/internal/logging"
	"github.com/abhisek/scholar/internal/quiz"
	"github.com/abhisek/scholar/internal/store"
)

// deps are the ready client handles shared by the TUI and the CLI commands.
type deps struct {
	cfg     config.Config
	logger  *slog.Logger
	store   *store.Store
	docs    backend.DocumentStore
	gate    *auth.Gate
	quizzes *quiz.Repository

	closers []func() error
}

// Close releases everything openDeps acquired, newest first.
func (d *deps) Close() error {
	var first error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openDeps loads configuration and produces ready client handles, or fails.
func openDeps(ctx context.Context, cmd *cobra.Command) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	d := &deps{cfg: cfg, logger: logger, closers: []func() error{closeLog}}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.store = st
	d.closers = append(d.closers, st.Close)

	var docs backend.DocumentStore = st.Documents()
	if cfg.DocumentBackend == config.BackendRedis {
		rd, err := store.OpenRedisDocuments(ctx, cfg.RedisURL)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("open redis documents: %w", err)
		}
		d.closers = append(d.closers, rd.Close)
		docs = rd
	}

	events := st.EventRepo()
	d.docs = audit.WrapDocuments(docs, events)
	d.gate = auth.NewGate(audit.WrapAuth(st.Accounts(), events), d.docs)
	d.quizzes = quiz.NewRepository(d.docs)

	logger.Info("client handles ready",
		"db", dbPath,
		"documents", cfg.DocumentBackend,
	)
	return d, nil
}
