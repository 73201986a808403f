package cli

import (
	"context"
	"fmt"

	"octofit/internal/api"
	"octofit/internal/record"
	"octofit/internal/resource"
	"octofit/internal/viewer"
	"octofit/pkg/logging"

	"golang.org/x/sync/errgroup"
)

const subsystem = "CLI"

// Result is one loaded collection after filtering.
type Result struct {
	Def     resource.Definition
	Columns []string
	Records []record.Record
	Total   int
}

// ExecutorOptions contains options for collection reads.
type ExecutorOptions struct {
	Format OutputFormat
	Filter string
	Quiet  bool
}

// Executor reads collections through an API client and prints them.
type Executor struct {
	client  api.Client
	printer *Printer
	options ExecutorOptions
}

// NewExecutor creates an executor writing to printer.
func NewExecutor(client api.Client, printer *Printer, options ExecutorOptions) (*Executor, error) {
	if client == nil {
		return nil, fmt.Errorf("an API client is required")
	}
	if err := options.Format.Validate(); err != nil {
		return nil, err
	}
	return &Executor{client: client, printer: printer, options: options}, nil
}

// Load fetches one collection and applies the filter.
func (e *Executor) Load(ctx context.Context, def resource.Definition) (Result, error) {
	st := viewer.New(def)
	if err := st.Load(ctx, e.client); err != nil {
		return Result{}, fmt.Errorf("%s %w", def.ErrorMessage(), err)
	}
	st.SetFilter(e.options.Filter)
	return Result{
		Def:     def,
		Columns: st.Columns,
		Records: st.Visible(),
		Total:   len(st.Records),
	}, nil
}

// LoadAll fetches every definition concurrently. Results keep the order of
// defs. The first failure cancels the remaining requests.
func (e *Executor) LoadAll(ctx context.Context, defs []resource.Definition) ([]Result, error) {
	results := make([]Result, len(defs))
	g, gctx := errgroup.WithContext(ctx)
	for i, def := range defs {
		g.Go(func() error {
			res, err := e.Load(gctx, def)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Get loads and prints a single collection.
func (e *Executor) Get(ctx context.Context, def resource.Definition) error {
	res, err := e.Load(ctx, def)
	if err != nil {
		return err
	}
	logging.Debug(subsystem, "%s: %d of %d records match", def.Name, len(res.Records), res.Total)
	return e.printer.Print(e.options.Format, []Result{res}, e.options.Quiet)
}

// GetAll loads and prints every collection in navigation order.
func (e *Executor) GetAll(ctx context.Context) error {
	results, err := e.LoadAll(ctx, resource.All())
	if err != nil {
		return err
	}
	return e.printer.Print(e.options.Format, results, e.options.Quiet)
}
