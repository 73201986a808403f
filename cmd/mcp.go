package cmd

import (
	"context"
	"os"

	"octofit/internal/mcpserver"

	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the OctoFit collections as MCP tools over stdio",
		Long: `Starts a Model Context Protocol server on stdin/stdout.

Tools:
  list_activities, list_leaderboard, list_teams, list_users, list_workouts
      Return the collection as JSON. The optional "filter" argument keeps
      records with a column value containing the text (case-insensitive).
  api_endpoints
      Show the resolved API base URL and collection endpoints.

Logs are written to stderr. Example MCP client configuration:

  {"command": "octofit", "args": ["mcp", "--api-url", "http://localhost:8000"]}`,
		Args: cobra.NoArgs,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	application, err := newApplication()
	if err != nil {
		return err
	}
	defer application.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	srv := mcpserver.New(application.Client(), rootCmd.Version)
	return srv.Serve(ctx, os.Stdin, cmd.OutOrStdout())
}
