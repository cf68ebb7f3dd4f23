package sessions

import (
	"encoding/json"
	"fmt"
	"os"
)

// Summary aggregates token usage across active OpenClaw sessions
type Summary struct {
	Sessions    int
	TotalTokens int64
}

// sessionEntry is the subset of a session record the report cares about
type sessionEntry struct {
	Tokens int64 `json:"tokens"`
}

// Summarize reads the OpenClaw sessions document and totals token usage.
// The document maps session ids to session objects; values that are not
// objects are skipped. The caller treats any error as "usage unavailable".
func Summarize(path string) (*Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sessions file: %w", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse sessions file: %w", err)
	}

	summary := &Summary{}
	for _, rawEntry := range entries {
		var entry sessionEntry
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			continue
		}
		summary.Sessions++
		summary.TotalTokens += entry.Tokens
	}

	return summary, nil
}
