package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/catalog"
	"github.com/papapumpkin/roster/internal/config"
	"github.com/papapumpkin/roster/internal/progress"
	"github.com/papapumpkin/roster/internal/store"
	"github.com/papapumpkin/roster/internal/telemetry"
	"github.com/papapumpkin/roster/internal/ui"
)

const documentFileName = "progress.json"

// session bundles the wiring every command needs: config, the opened
// store, the repository on top of it, and the optional telemetry stream.
type session struct {
	cfg     config.Config
	printer *ui.Printer
	store   store.Store
	repo    *progress.Repository
	events  *telemetry.Emitter // nil when telemetry is disabled
}

// newSession loads config, applies flag overrides, and opens the storage
// backend. Callers must Close the session when done.
func newSession(cmd *cobra.Command) (*session, error) {
	printer := ui.New()
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
	}
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Backend = backend
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:     cfg,
		printer: printer,
		store:   st,
		repo:    progress.NewRepository(st),
	}
	if !s.repo.StorageAvailable() {
		printer.Warn(fmt.Sprintf("storage unavailable at %s — changes will not persist", cfg.DataDir))
	}

	if cfg.Telemetry {
		emitter, err := telemetry.NewEmitter(filepath.Join(cfg.DataDir, "events.jsonl"))
		if err != nil {
			// Telemetry failing to open never blocks the command.
			if cfg.Verbose {
				printer.Warn(err.Error())
			}
		} else {
			s.events = emitter
		}
	}
	return s, nil
}

func (s *session) Close() {
	_ = s.events.Close()
	_ = s.store.Close()
}

// openStore constructs the configured storage backend. The file backend
// needs no setup; sqlite opens a single-writer database in the data dir.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Backend {
	case "", "file":
		return store.NewFileStore(filepath.Join(cfg.DataDir, documentFileName)), nil
	case "sqlite":
		st, err := store.NewSQLiteStore(ctx, filepath.Join(cfg.DataDir, "roster.db"))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want file or sqlite)", cfg.Backend)
	}
}

// loadChampions returns the champion catalog, preferring the on-disk cache
// and falling back to Data Dragon. A successful network fetch refreshes
// the cache so subsequent runs work offline.
func loadChampions(ctx context.Context, s *session) ([]catalog.Champion, string, error) {
	if champs, version, ok := catalog.LoadCache(s.cfg.DataDir); ok {
		return champs, version, nil
	}
	client := catalog.NewClient(
		catalog.WithBaseURL(s.cfg.DDragonBaseURL),
		catalog.WithLocale(s.cfg.Locale),
	)
	champs, version, err := client.Champions(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch champion catalog: %w", err)
	}
	if err := catalog.SaveCache(s.cfg.DataDir, version, champs); err != nil && s.cfg.Verbose {
		s.printer.Warn(err.Error())
	}
	return champs, version, nil
}
