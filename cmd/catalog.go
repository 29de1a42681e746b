package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/roster/internal/catalog"
	"github.com/papapumpkin/roster/internal/telemetry"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the cached champion catalog",
}

var catalogRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the latest catalog from Data Dragon",
	RunE:  runCatalogRefresh,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cached catalog version and size",
	RunE:  runCatalogShow,
}

func init() {
	catalogCmd.AddCommand(catalogRefreshCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogRefresh(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	client := catalog.NewClient(
		catalog.WithBaseURL(s.cfg.DDragonBaseURL),
		catalog.WithLocale(s.cfg.Locale),
	)
	champs, version, err := client.Refresh(cmd.Context())
	if err != nil {
		s.printer.Error(err.Error())
		return err
	}
	if err := catalog.SaveCache(s.cfg.DataDir, version, champs); err != nil {
		s.printer.Error(err.Error())
		return err
	}
	_ = s.events.Emit(telemetry.Event{
		Timestamp: time.Now().UTC(),
		Kind:      telemetry.KindCatalogRefreshed,
		Data:      map[string]any{"version": version, "champions": len(champs)},
	})
	s.printer.Info(fmt.Sprintf("catalog %s cached (%d champions)", version, len(champs)))
	return nil
}

func runCatalogShow(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	champs, version, ok := catalog.LoadCache(s.cfg.DataDir)
	if !ok {
		s.printer.Info("no catalog cached — run `roster catalog refresh`")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version:   %s\n", version)
	fmt.Fprintf(cmd.OutOrStdout(), "champions: %d\n", len(champs))
	return nil
}
