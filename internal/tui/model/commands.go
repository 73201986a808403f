package model

import (
	"context"

	"octofit/internal/resource"
	"octofit/internal/viewer"
	"octofit/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchCollectionCmd runs one collection fetch off the update loop and
// reports it as a FetchResultMsg tagged with viewerID and tok.
func FetchCollectionCmd(ctx context.Context, f viewer.Fetcher, viewerID uint64, def resource.Definition, tok viewer.Token) tea.Cmd {
	return func() tea.Msg {
		records, err := f.FetchCollection(ctx, def)
		return FetchResultMsg{
			ViewerID: viewerID,
			Token:    tok,
			Records:  records,
			Err:      err,
		}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. The controller
// re-issues it after every NewLogEntryMsg.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return LogChannelClosedMsg{}
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
