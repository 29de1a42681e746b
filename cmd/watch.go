package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/progress"
	"github.com/papapumpkin/roster/internal/store"
	"github.com/papapumpkin/roster/internal/view"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the progress file and show a live progress line",
	Long: `Follows the progress document for external writes (another terminal,
a sync, an import) and keeps a progress line updated in place. Only the
file backend can be watched. Ctrl-C exits.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	fs, ok := s.store.(*store.FileStore)
	if !ok {
		return fmt.Errorf("watch requires the file backend (got %q)", s.cfg.Backend)
	}

	champs, _, err := loadChampions(cmd.Context(), s)
	if err != nil {
		s.printer.Error(err.Error())
		return err
	}

	w, err := store.NewWatcher(fs)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Stop()

	render := func() {
		// Re-read from disk each time; the repository caches in memory.
		repo := progress.NewRepository(fs)
		stats := view.ComputeStats(view.Enrich(champs, repo.Snapshot()))
		s.printer.ProgressBar(stats.Completed, stats.Total)
	}
	render()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-w.Changes:
			render()
		case <-sigCh:
			s.printer.ProgressBarDone()
			return nil
		case <-cmd.Context().Done():
			s.printer.ProgressBarDone()
			return nil
		}
	}
}
