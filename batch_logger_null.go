package iterables

import "context"

// NullBatchLogger is a no-op implementation
type NullBatchLogger struct{}

func NewNullBatchLogger() *NullBatchLogger {
	return &NullBatchLogger{}
}

func (l *NullBatchLogger) LogItem(ctx context.Context, entry *ItemLogEntry) error {
	return nil
}

func (l *NullBatchLogger) GetItemHistory(ctx context.Context, batchID string) ([]*ItemLogEntry, error) {
	return nil, nil
}
