package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Persistent flags shared by every command.
var (
	apiURL      string
	configPath  string
	debug       bool
	metricsAddr string
)

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it opens the interactive browser.
var rootCmd = &cobra.Command{
	Use:   "octofit",
	Short: "Browse the OctoFit Tracker API from your terminal",
	Long: `octofit is a terminal client for the OctoFit Tracker REST API.
It lists activities, the leaderboard, teams, users and workouts in an
interactive table view, prints collections for scripting, and can serve
them to AI assistants over the Model Context Protocol.

The API base URL is resolved once at startup: --api-url, then api.baseUrl
from the configuration, then the codespace forwarding URL built from
CODESPACE_NAME, and finally http://localhost:8000.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreachable API, unknown resource)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runBrowse,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "octofit version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "OctoFit API base URL (overrides configuration and CODESPACE_NAME)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Additional configuration file layered over ~/.config/octofit and ./.octofit")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics and health probes on this address (e.g. :9090)")

	rootCmd.Flags().StringVar(&browseRoute, "route", "", "Initial view: a route such as /teams or a resource name")
}
