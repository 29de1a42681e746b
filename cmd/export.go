package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your progress document as JSON",
	Long: `Writes the full progress document (played champions, lane roles,
timestamps) as indented JSON. The default filename is date-stamped;
use --output - to write to stdout.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output path (default roster-export-YYYY-MM-DD.json, - for stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := s.repo.Export()
	if err != nil {
		s.printer.Error(err.Error())
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "-" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	if out == "" {
		out = fmt.Sprintf("roster-export-%s.json", time.Now().Format(time.DateOnly))
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	s.printer.Info(fmt.Sprintf("exported to %s", out))
	return nil
}
