package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/view"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random champion you haven't played",
	Long: `Picks uniformly among incomplete champions. Restriction flags narrow
the candidate pool; when nothing matches, the command says so instead of
picking outside the restriction.`,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().StringSlice("tag", nil, "restrict to class tags")
	randomCmd.Flags().StringSlice("resource", nil, "restrict to resource types")
	randomCmd.Flags().StringSlice("role", nil, "restrict to assigned lane roles")
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, _ []string) error {
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

	restrict := view.Restrict{}
	restrict.Tags, _ = cmd.Flags().GetStringSlice("tag")
	restrict.ResourceTypes, _ = cmd.Flags().GetStringSlice("resource")
	restrict.LaneRoles, _ = cmd.Flags().GetStringSlice("role")

	items := view.Enrich(champs, s.repo.Snapshot())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pick, ok := view.RandomIncomplete(items, restrict, rng)
	if !ok {
		s.printer.NoRandomPick()
		return nil
	}
	s.printer.RandomPick(pick)
	return nil
}
