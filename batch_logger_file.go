package iterables

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileBatchLogger is an implementation of BatchLogger that logs to a file.
// A file is created per batch run. The file is formatted as
// newline-delimited JSON.
type FileBatchLogger struct {
	directory string
}

func NewFileBatchLogger(directory string) *FileBatchLogger {
	return &FileBatchLogger{directory: directory}
}

func (l *FileBatchLogger) batchLogPath(batchID string) string {
	return filepath.Join(l.directory, fmt.Sprintf("%s.jsonl", batchID))
}

func (l *FileBatchLogger) LogItem(ctx context.Context, entry *ItemLogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	filePath := l.batchLogPath(entry.BatchID)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return err
	}
	return f.Sync()
}

func (l *FileBatchLogger) GetItemHistory(ctx context.Context, batchID string) ([]*ItemLogEntry, error) {
	data, err := os.ReadFile(l.batchLogPath(batchID))
	if err != nil {
		return nil, err
	}
	var entries []*ItemLogEntry
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		var entry ItemLogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}
