package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/reconcile"
	"github.com/papapumpkin/roster/internal/telemetry"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported progress document",
	Long: `Imports a JSON progress document, validating it before any change is
applied.

In merge mode (the default) the imported document is combined with your
current progress: nothing already played is lost, role sets are unioned,
and the later timestamp wins per champion. In replace mode the imported
document overwrites your progress entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("mode", string(reconcile.ModeMerge), "import mode: merge or replace")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	rawMode, _ := cmd.Flags().GetString("mode")
	mode, err := reconcile.ParseMode(rawMode)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	outcome := reconcile.ImportDocument(s.repo, data, mode)
	if !outcome.Success {
		err := fmt.Errorf("import rejected: %s", outcome.Err)
		s.printer.Error(err.Error())
		return err
	}
	_ = s.events.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindImportApplied,
		Data:      map[string]any{"mode": string(mode), "imported": outcome.Imported},
	})
	s.printer.ImportOutcome(string(mode), outcome.Imported)
	return nil
}
