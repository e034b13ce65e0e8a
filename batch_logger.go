package iterables

import (
	"context"
	"time"
)

// ItemLogEntry records one action invocation within a batch run.
type ItemLogEntry struct {
	BatchID      string    `json:"batch_id"`
	IterableName string    `json:"iterable_name"`
	Index        int       `json:"index"`
	Prompt       string    `json:"prompt"`
	Result       any       `json:"result,omitempty"`
	Error        string    `json:"error,omitempty"`
	StartTime    time.Time `json:"start_time"`
	Duration     float64   `json:"duration"`
}

// BatchLogger defines simple per-item logging interface
type BatchLogger interface {
	// LogItem logs a completed item invocation
	LogItem(ctx context.Context, entry *ItemLogEntry) error

	// GetItemHistory retrieves the item log for a batch run
	GetItemHistory(ctx context.Context, batchID string) ([]*ItemLogEntry, error)
}
