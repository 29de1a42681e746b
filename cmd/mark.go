package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/telemetry"
)

var markCmd = &cobra.Command{
	Use:   "mark <champion-id>",
	Short: "Mark a champion as played",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompletion(cmd, args[0], true)
	},
}

var unmarkCmd = &cobra.Command{
	Use:   "unmark <champion-id>",
	Short: "Mark a champion as not played (lane roles are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompletion(cmd, args[0], false)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <champion-id>",
	Short: "Toggle a champion's played state",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

func init() {
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(unmarkCmd)
	rootCmd.AddCommand(toggleCmd)
}

func setCompletion(cmd *cobra.Command, id string, completed bool) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if !s.repo.SetCompleted(id, completed) {
		err := fmt.Errorf("failed to persist completion for %q", id)
		s.printer.Error(err.Error())
		return err
	}
	_ = s.events.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindCompletionToggled,
		Champion:  id,
		Data:      map[string]any{"completed": completed},
	})
	if completed {
		s.printer.Info(fmt.Sprintf("✓ %s marked played", id))
	} else {
		s.printer.Info(fmt.Sprintf("· %s marked not played", id))
	}
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	id := args[0]
	if !s.repo.ToggleCompleted(id) {
		err := fmt.Errorf("failed to persist completion for %q", id)
		s.printer.Error(err.Error())
		return err
	}
	completed := s.repo.IsCompleted(id)
	_ = s.events.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindCompletionToggled,
		Champion:  id,
		Data:      map[string]any{"completed": completed},
	})
	if completed {
		s.printer.Info(fmt.Sprintf("✓ %s marked played", id))
	} else {
		s.printer.Info(fmt.Sprintf("· %s marked not played", id))
	}
	return nil
}
