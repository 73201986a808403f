package model

import (
	"octofit/internal/record"
	"octofit/internal/viewer"
	"octofit/pkg/logging"
)

// FetchResultMsg carries one collection fetch back to the update loop.
// ViewerID and Token identify the request; results for an unmounted viewer or
// an outdated token are dropped.
type FetchResultMsg struct {
	ViewerID uint64
	Token    viewer.Token
	Records  []record.Record
	Err      error
}

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// LogChannelClosedMsg is sent once the logging channel has been closed.
type LogChannelClosedMsg struct{}

type ClearStatusBarMsg struct{}
