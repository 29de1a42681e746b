package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/reconcile"
	"github.com/papapumpkin/roster/internal/riot"
	"github.com/papapumpkin/roster/internal/telemetry"
)

var syncCmd = &cobra.Command{
	Use:   "sync [summoner-name]",
	Short: "Import played champions from Riot match history",
	Long: `Pulls recent match history from the Riot API and marks every champion
you played in it. Champions already marked are left untouched, so
syncing never loses local progress.

The summoner name and region are remembered after the first sync; later
runs can omit them. Requires riot.api_key in config or RIOT_API_KEY.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().String("region", "", "platform region (e.g. euw1, na1, kr)")
	syncCmd.Flags().Int("matches", 0, "number of recent matches to scan")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.cfg.Riot.APIKey == "" {
		return fmt.Errorf("no Riot API key configured (set riot.api_key or ROSTER_RIOT_API_KEY)")
	}

	account, err := riot.LoadAccount(s.cfg.DataDir)
	if err != nil {
		s.printer.Error(err.Error())
		return err
	}

	summoner := account.Summoner
	if len(args) > 0 {
		summoner = args[0]
	}
	if summoner == "" {
		return fmt.Errorf("no summoner name given and none remembered from a previous sync")
	}
	region := account.Region
	if flagRegion, _ := cmd.Flags().GetString("region"); flagRegion != "" {
		region = flagRegion
	}
	if region == "" {
		region = s.cfg.Riot.Region
	}
	matches := s.cfg.Riot.MatchCount
	if flagMatches, _ := cmd.Flags().GetInt("matches"); flagMatches > 0 {
		matches = flagMatches
	}

	client := riot.NewClient(s.cfg.Riot.APIKey)
	s.printer.Info(fmt.Sprintf("syncing %s (%s), scanning up to %d matches...", summoner, region, matches))

	result, err := client.History(cmd.Context(), summoner, region, matches)
	if err != nil {
		switch {
		case errors.Is(err, riot.ErrSummonerNotFound):
			s.printer.Error(fmt.Sprintf("summoner %q not found in %s", summoner, region))
		case errors.Is(err, riot.ErrInvalidAPIKey):
			s.printer.Error("Riot API key rejected — it may have expired")
		case errors.Is(err, riot.ErrRateLimited):
			s.printer.Error("Riot API rate limit hit — try again in a few minutes")
		default:
			s.printer.Error(err.Error())
		}
		return err
	}

	outcome := reconcile.ImportIdentifiers(s.repo, result.Champions)
	if !outcome.Success {
		err := fmt.Errorf("failed to persist synced champions")
		s.printer.Error(err.Error())
		return err
	}

	account.Summoner = result.Summoner.Name
	account.Region = region
	account.LastSync = time.Now().UTC()
	account.SyncCount++
	account.LastResult = outcome.Imported
	if err := riot.SaveAccount(s.cfg.DataDir, account); err != nil && s.cfg.Verbose {
		s.printer.Warn(err.Error())
	}

	_ = s.events.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindHistorySynced,
		Data: map[string]any{
			"summoner": result.Summoner.Name,
			"region":   region,
			"scanned":  result.Scanned,
			"imported": outcome.Imported,
		},
	})
	s.printer.SyncOutcome(result.Summoner.Name, result.Scanned, outcome.Imported)
	return nil
}
