package viewer

import (
	"context"
	"fmt"
	"sync/atomic"

	"octofit/internal/metrics"
	"octofit/internal/record"
	"octofit/internal/resource"
	"octofit/pkg/logging"
)

const subsystem = "Viewer"

// Token identifies one fetch issued by a State. Only the latest token's
// result is applied.
type Token uint64

// Fetcher loads one resource collection.
type Fetcher interface {
	FetchCollection(ctx context.Context, def resource.Definition) ([]record.Record, error)
}

var nextID atomic.Uint64

// State is the per-viewer View State. It is owned by a single goroutine
// (the TUI update loop or a CLI command) and is not safe for concurrent use.
type State struct {
	// ID distinguishes mounts of the same resource so results addressed to
	// an unmounted viewer can be recognised.
	ID  uint64
	Def resource.Definition

	Records  []record.Record
	Columns  []string
	Error    string
	LastErr  error
	Loading  bool
	Filter   string
	Selected *record.Record

	latest Token
}

// New mounts a viewer for def with an empty collection.
func New(def resource.Definition) *State {
	return &State{ID: nextID.Add(1), Def: def}
}

// BeginFetch marks a request as in flight and returns its token. The error
// banner is cleared; the current collection stays on screen.
func (s *State) BeginFetch() Token {
	s.latest++
	s.Loading = true
	s.Error = ""
	s.LastErr = nil
	return s.latest
}

// Latest returns the token of the most recently issued request.
func (s *State) Latest() Token { return s.latest }

// Complete applies a successful result. It returns false, changing nothing,
// when tok is not the latest request.
func (s *State) Complete(tok Token, records []record.Record) bool {
	if !s.accept(tok) {
		return false
	}
	s.Records = records
	s.Columns = record.DeriveColumns(records)
	s.Loading = false
	s.Error = ""
	s.LastErr = nil
	// The previous selection belonged to the replaced collection.
	s.Selected = nil
	logging.Debug(subsystem, "%s: %d records, %d columns", s.Def.Name, len(records), len(s.Columns))
	return true
}

// Fail records a failed request. The previous collection is left untouched.
// It returns false when tok is not the latest request.
func (s *State) Fail(tok Token, err error) bool {
	if !s.accept(tok) {
		return false
	}
	s.Loading = false
	s.Error = s.Def.ErrorMessage()
	s.LastErr = err
	logging.Warn(subsystem, "%s: %v", s.Def.Name, err)
	return true
}

func (s *State) accept(tok Token) bool {
	if tok != s.latest {
		metrics.Metrics.StaleResultsTotal.WithLabelValues(s.Def.Name).Inc()
		logging.Debug(subsystem, "%s: dropping stale result %d (latest %d)", s.Def.Name, tok, s.latest)
		return false
	}
	return true
}

// Load runs one synchronous fetch through f and applies the result.
func (s *State) Load(ctx context.Context, f Fetcher) error {
	tok := s.BeginFetch()
	records, err := f.FetchCollection(ctx, s.Def)
	if err != nil {
		s.Fail(tok, err)
		return err
	}
	s.Complete(tok, records)
	return nil
}

// SetFilter captures the filter text.
func (s *State) SetFilter(text string) { s.Filter = text }

// ClearFilter resets the filter text.
func (s *State) ClearFilter() { s.Filter = "" }

// Visible returns the records matching the filter, in collection order.
func (s *State) Visible() []record.Record {
	if s.Filter == "" {
		return s.Records
	}
	out := make([]record.Record, 0, len(s.Records))
	for _, r := range s.Records {
		if r.Matches(s.Columns, s.Filter) {
			out = append(out, r)
		}
	}
	return out
}

// VisibleRows formats the visible records against the derived columns.
func (s *State) VisibleRows() [][]string {
	visible := s.Visible()
	rows := make([][]string, len(visible))
	for i, r := range visible {
		rows[i] = r.Row(s.Columns)
	}
	return rows
}

// OpenDetails selects the i-th visible record for the details overlay,
// replacing any previous selection.
func (s *State) OpenDetails(i int) error {
	visible := s.Visible()
	if i < 0 || i >= len(visible) {
		return fmt.Errorf("no %s at row %d", s.Def.Name, i)
	}
	selected := visible[i]
	s.Selected = &selected
	return nil
}

// CloseDetails hides the details overlay and clears the selection.
func (s *State) CloseDetails() { s.Selected = nil }

// DetailsOpen reports whether a record is selected.
func (s *State) DetailsOpen() bool { return s.Selected != nil }

// DetailsBody returns the selected record as indented JSON.
func (s *State) DetailsBody() string {
	if s.Selected == nil {
		return ""
	}
	return s.Selected.Pretty()
}

// EmptyMessage returns the "nothing to show" notice, or "" when it does not apply.
func (s *State) EmptyMessage() string {
	if s.Error != "" || s.Loading || len(s.Records) > 0 {
		return ""
	}
	return s.Def.EmptyMessage()
}

// RefreshLabel labels the refresh action for the current loading state.
func (s *State) RefreshLabel() string {
	if s.Loading {
		return "Refreshing..."
	}
	return "Refresh"
}
