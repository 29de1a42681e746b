package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/view"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate progress statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	champs, _, err := loadChampions(cmd.Context(), s)
	if err != nil {
		s.printer.Error(err.Error())
		return err
	}

	items := view.Enrich(champs, s.repo.Snapshot())
	s.printer.Stats(view.ComputeStats(items))
	return nil
}
