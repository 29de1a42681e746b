package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/telemetry"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress",
	Long:  "Clears every played mark, lane role, and timestamp. Requires --force.",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("force", false, "actually erase (reset refuses to run without it)")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		return fmt.Errorf("reset erases all progress; re-run with --force to confirm")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if !s.repo.ResetAll() {
		err := fmt.Errorf("failed to persist reset")
		s.printer.Error(err.Error())
		return err
	}
	_ = s.events.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindDocumentReset,
	})
	s.printer.Info("all progress erased")
	return nil
}
