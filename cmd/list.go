package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/view"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List champions with filters",
	Long: `Lists the champion catalog joined with your progress.

Filters compose: each flag only narrows the list further. Multi-value
flags (--tag, --resource, --role) match any of the given values.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringP("search", "q", "", "substring match on name, title, or tags")
	listCmd.Flags().String("status", "all", "completion filter: all, completed, or incomplete")
	listCmd.Flags().StringSlice("tag", nil, "filter by class tag (e.g. Mage, Tank)")
	listCmd.Flags().StringSlice("resource", nil, "filter by resource type (e.g. Mana, Energy)")
	listCmd.Flags().StringSlice("role", nil, "filter by assigned lane role (e.g. MID, JUNGLE)")
	listCmd.Flags().String("sort", string(view.SortNameAsc), "sort mode: name-asc, name-desc, difficulty-asc, difficulty-desc, incomplete-first, last-completed")
	rootCmd.AddCommand(listCmd)
}

// parseFilters builds a Filters value from list-style flags. Shared with
// the commands that accept the same narrowing flags.
func parseFilters(cmd *cobra.Command) (view.Filters, error) {
	f := view.DefaultFilters()
	f.Search, _ = cmd.Flags().GetString("search")
	f.Tags, _ = cmd.Flags().GetStringSlice("tag")
	f.ResourceTypes, _ = cmd.Flags().GetStringSlice("resource")
	f.LaneRoles, _ = cmd.Flags().GetStringSlice("role")

	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		status, ok := view.ParseStatus(raw)
		if !ok {
			return f, fmt.Errorf("unknown status %q (want all, completed, or incomplete)", raw)
		}
		f.Status = status
	}
	if raw, _ := cmd.Flags().GetString("sort"); raw != "" {
		mode, ok := view.ParseSort(raw)
		if !ok {
			return f, fmt.Errorf("unknown sort %q", raw)
		}
		f.Sort = mode
	}
	return f, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	filters, err := parseFilters(cmd)
	if err != nil {
		return err
	}

	champs, _, err := loadChampions(cmd.Context(), s)
	if err != nil {
		s.printer.Error(err.Error())
		return err
	}

	items := view.Enrich(champs, s.repo.Snapshot())
	s.printer.ChampionList(filters.Apply(items), filters, len(items))
	return nil
}
