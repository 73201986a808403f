package cmd

import (
	"context"
	"fmt"
	"os"

	"octofit/internal/app"

	"github.com/spf13/cobra"
)

// browseRoute selects the initial view; empty falls back to ui.initialRoute.
var browseRoute string

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive OctoFit browser",
		Long: `Opens a terminal UI with one tab per OctoFit collection.

Keys:
  1-5, tab        switch collection
  r               refresh the current collection
  /               filter rows by keyword, c clears the filter
  enter           show the selected record as JSON, y copies it
  L               activity log, ? help, q quit`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
	cmd.Flags().StringVar(&browseRoute, "route", "", "Initial view: a route such as /teams or a resource name")
	return cmd
}

// newApplication builds the application from the persistent flags.
func newApplication() (*app.Application, error) {
	cfg := app.NewConfig(apiURL, configPath, debug)
	cfg.MetricsAddr = metricsAddr
	cfg.Route = browseRoute

	application, err := app.NewApplication(cfg, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	application, err := newApplication()
	if err != nil {
		return err
	}
	defer application.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}
