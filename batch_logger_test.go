package iterables

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileBatchLogger(t *testing.T) {
	logger := NewFileBatchLogger(t.TempDir())
	ctx := context.Background()
	batchID := NewBatchID()

	entries := []*ItemLogEntry{
		{
			BatchID:      batchID,
			IterableName: "numbers",
			Index:        1,
			Prompt:       "n=0",
			Result:       "ok",
			StartTime:    time.Now().UTC().Truncate(time.Second),
			Duration:     0.25,
		},
		{
			BatchID:      batchID,
			IterableName: "numbers",
			Index:        2,
			Prompt:       "n=1",
			Error:        "boom",
			StartTime:    time.Now().UTC().Truncate(time.Second),
			Duration:     0.5,
		},
	}
	for _, entry := range entries {
		require.NoError(t, logger.LogItem(ctx, entry))
	}

	history, err := logger.GetItemHistory(ctx, batchID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, 1, history[0].Index)
	require.Equal(t, "n=0", history[0].Prompt)
	require.Equal(t, "ok", history[0].Result)
	require.Equal(t, "boom", history[1].Error)
	require.Equal(t, 0.5, history[1].Duration)

	// Separate batch IDs keep separate histories.
	_, err = logger.GetItemHistory(ctx, NewBatchID())
	require.Error(t, err)
}

func TestNullBatchLogger(t *testing.T) {
	logger := NewNullBatchLogger()
	ctx := context.Background()

	require.NoError(t, logger.LogItem(ctx, &ItemLogEntry{BatchID: "batch_x", Index: 1}))

	history, err := logger.GetItemHistory(ctx, "batch_x")
	require.NoError(t, err)
	require.Nil(t, history)
}
