package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"octofit/internal/record"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// maxCellWidth caps table cells so wide nested values stay readable.
const maxCellWidth = 40

// Validate reports unsupported formats.
func (f OutputFormat) Validate() error {
	switch f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (use table, json or yaml)", string(f))
	}
}

// Printer renders results to a writer.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print writes results in the given format. A single result prints as a
// JSON/YAML list; several results print as a mapping keyed by resource name.
func (p *Printer) Print(format OutputFormat, results []Result, quiet bool) error {
	switch format {
	case OutputFormatJSON:
		return p.outputJSON(results)
	case OutputFormatYAML:
		return p.outputYAML(results)
	case OutputFormatTable:
		return p.outputTable(results, quiet)
	default:
		return format.Validate()
	}
}

// MarshalResults encodes results as compact JSON in field order.
func MarshalResults(results []Result) ([]byte, error) {
	if len(results) == 1 {
		return record.MarshalRecords(results[0].Records)
	}

	var doc record.Record
	for _, res := range results {
		data, err := record.MarshalRecords(res.Records)
		if err != nil {
			return nil, err
		}
		var v record.Value
		if err := v.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		doc.Set(res.Def.Name, v)
	}
	return doc.MarshalJSON()
}

func (p *Printer) outputJSON(results []Result) error {
	data, err := MarshalResults(results)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("failed to indent JSON: %w", err)
	}
	buf.WriteByte('\n')
	_, err = p.out.Write(buf.Bytes())
	return err
}

// outputYAML converts the ordered JSON to a YAML node tree so field order
// survives the conversion.
func (p *Printer) outputYAML(results []Result) error {
	data, err := MarshalResults(results)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return enc.Close()
}

// blockStyle drops the flow and quoting styles inherited from JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func (p *Printer) outputTable(results []Result, quiet bool) error {
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(p.out)
			}
			fmt.Fprintln(p.out, text.Bold.Sprint(res.Def.Label))
		}
		p.formatTable(res, quiet)
	}
	return nil
}

func (p *Printer) formatTable(res Result, quiet bool) {
	if len(res.Records) == 0 {
		if res.Total > 0 {
			fmt.Fprintln(p.out, text.FgYellow.Sprintf("No %s match the filter.", res.Def.EmptyNoun))
		} else {
			fmt.Fprintln(p.out, text.FgYellow.Sprint(res.Def.EmptyMessage()))
		}
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)

	headers := make(table.Row, len(res.Columns))
	for i, col := range res.Columns {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(headers)

	for _, r := range res.Records {
		cells := r.Row(res.Columns)
		row := make(table.Row, len(cells))
		for i, c := range cells {
			row[i] = runewidth.Truncate(c, maxCellWidth, "…")
		}
		t.AppendRow(row)
	}
	t.Render()

	if quiet {
		return
	}
	if len(res.Records) != res.Total {
		fmt.Fprintf(p.out, "\n%s %d of %d %s\n", text.FgHiBlue.Sprint("Showing:"), len(res.Records), res.Total, res.Def.Name)
		return
	}
	fmt.Fprintf(p.out, "\n%s %d %s\n", text.FgHiBlue.Sprint("Total:"), res.Total, res.Def.Name)
}
