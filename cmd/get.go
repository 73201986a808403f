package cmd

import (
	"context"
	"fmt"
	"strings"

	"octofit/internal/cli"
	"octofit/internal/resource"

	"github.com/spf13/cobra"
)

var (
	getOutputFormat string
	getFilter       string
	getAll          bool
	getQuiet        bool
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <resource>",
		Short: "Print an OctoFit collection",
		Long: `Fetches one collection from the OctoFit API and prints it.

Resources: ` + strings.Join(resource.Names(), ", ") + `

The table columns are the keys of the first record, in order. JSON and YAML
output keep each record's field order. With --all every collection is fetched
concurrently and printed in navigation order.`,
		Example: `  octofit get activities
  octofit get teams --filter blue -o json
  octofit get --all -o yaml`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: resource.Names(),
		RunE:      runGet,
	}

	cmd.Flags().StringVarP(&getOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().StringVarP(&getFilter, "filter", "f", "", "Only print records with a column value containing this text")
	cmd.Flags().BoolVar(&getAll, "all", false, "Fetch all five collections")
	cmd.Flags().BoolVarP(&getQuiet, "quiet", "q", false, "Suppress non-essential output")
	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	var def resource.Definition
	switch {
	case getAll && len(args) > 0:
		return fmt.Errorf("--all cannot be combined with a resource name")
	case !getAll && len(args) == 0:
		return fmt.Errorf("a resource is required (one of %s) or --all", strings.Join(resource.Names(), ", "))
	case !getAll:
		var ok bool
		if def, ok = resource.Lookup(args[0]); !ok {
			return fmt.Errorf("unknown resource %q (one of %s)", args[0], strings.Join(resource.Names(), ", "))
		}
	}

	application, err := newApplication()
	if err != nil {
		return err
	}
	defer application.Close()

	executor, err := cli.NewExecutor(application.Client(), cli.NewPrinter(cmd.OutOrStdout()), cli.ExecutorOptions{
		Format: cli.OutputFormat(getOutputFormat),
		Filter: getFilter,
		Quiet:  getQuiet,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if getAll {
		return executor.GetAll(ctx)
	}
	return executor.Get(ctx, def)
}
