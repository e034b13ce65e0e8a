package iterables

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"go.jetify.com/typeid"
)

// NewBatchID returns a new typed ID for batch run identification
func NewBatchID() string {
	id, err := typeid.WithPrefix("batch")
	if err != nil {
		panic(err)
	}
	return id.String()
}

// BatchExecutorOptions configures a new batch executor
type BatchExecutorOptions struct {
	Service          *Service
	Runner           ActionRunner
	ExecutionContext ExecutionContext
	Logger           *slog.Logger
	BatchLogger      BatchLogger
	Formatter        BatchFormatter
	Callbacks        BatchCallbacks
	BatchID          string
}

// ItemFailure records an isolated action failure for one item.
type ItemFailure struct {
	Index  int
	Prompt string
	Error  error
}

// BatchResult summarizes a completed batch run.
type BatchResult struct {
	BatchID      string
	IterableName string
	Template     string
	Processed    int
	Failures     []ItemFailure
	StartTime    time.Time
	EndTime      time.Time
}

// BatchExecutor drives the per-item loop of a batch run: it pulls items
// lazily from the iterable service, interpolates the template, invokes the
// action runner, and restores the execution context checkpoint between
// items so every item executes against an identical baseline.
//
// A single executor performs a single run. Execution is strictly sequential
// and ordered; the only suspension points are pulling the next item and
// awaiting the action runner.
type BatchExecutor struct {
	service     *Service
	runner      ActionRunner
	execContext ExecutionContext
	logger      *slog.Logger
	batchLogger BatchLogger
	formatter   BatchFormatter
	callbacks   BatchCallbacks
	batchID     string

	mutex   sync.Mutex
	started bool
}

// NewBatchExecutor creates a new batch executor
func NewBatchExecutor(opts BatchExecutorOptions) (*BatchExecutor, error) {
	if opts.Service == nil {
		return nil, fmt.Errorf("service is required")
	}
	if opts.Runner == nil {
		return nil, fmt.Errorf("action runner is required")
	}
	if opts.ExecutionContext == nil {
		return nil, fmt.Errorf("execution context is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.BatchLogger == nil {
		opts.BatchLogger = NewNullBatchLogger()
	}
	if opts.Formatter == nil {
		opts.Formatter = NewNullBatchFormatter()
	}
	if opts.Callbacks == nil {
		opts.Callbacks = &BaseBatchCallbacks{}
	}
	if opts.BatchID == "" {
		opts.BatchID = NewBatchID()
	}
	return &BatchExecutor{
		service:     opts.Service,
		runner:      opts.Runner,
		execContext: opts.ExecutionContext,
		logger:      opts.Logger.With("batch_id", opts.BatchID),
		batchLogger: opts.BatchLogger,
		formatter:   opts.Formatter,
		callbacks:   opts.Callbacks,
		batchID:     opts.BatchID,
	}, nil
}

// ID returns the batch run ID
func (e *BatchExecutor) ID() string {
	return e.batchID
}

func (e *BatchExecutor) start() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.started {
		return fmt.Errorf("batch already started")
	}
	e.started = true
	return nil
}

// parseBatchInput splits "@<name> <template>" batch input. The input must
// begin with an @-prefixed iterable name followed by a non-empty template.
func parseBatchInput(input string) (string, string, error) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "@") {
		return "", "", NewUsageError("batch input must start with @<name>")
	}
	rest := trimmed[1:]
	var name, template string
	if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
		name = rest[:i]
		template = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
	} else {
		name = rest
	}
	if name == "" {
		return "", "", NewUsageError("iterable name is required after @")
	}
	if template == "" {
		return "", "", NewUsageError("a template is required after @%s", name)
	}
	return name, template, nil
}

// Run executes the batch described by input ("@<name> <template>") to
// completion.
//
// Failure semantics: an action runner failure is isolated to its item,
// reported tagged with the item index, and the batch continues. A failure
// raised while pulling the next item from the provider's sequence aborts the
// remaining iteration and propagates as a generation failure. In both cases
// the checkpoint captured before the loop is restored before Run returns.
func (e *BatchExecutor) Run(ctx context.Context, input string) (*BatchResult, error) {
	if err := e.start(); err != nil {
		return nil, err
	}

	// Parse before any side effect.
	name, template, err := parseBatchInput(input)
	if err != nil {
		return nil, err
	}

	ctx = WithLogger(ctx, e.logger)
	ctx = WithExecutionContext(ctx, e.execContext)

	// Capture the checkpoint immediately before entering the loop and
	// guarantee one final restore on every exit path.
	checkpoint := e.execContext.Snapshot()
	defer e.execContext.Restore(checkpoint)

	seq, err := e.service.Generate(ctx, name)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		BatchID:      e.batchID,
		IterableName: name,
		Template:     template,
		StartTime:    time.Now(),
	}
	e.callbacks.BeforeBatchExecution(ctx, &BatchExecutionEvent{
		BatchID:      e.batchID,
		IterableName: name,
		Template:     template,
		StartTime:    result.StartTime,
	})
	e.logger.Info("batch started", "iterable", name)

	var runErr error
	index := 0
	for item, genErr := range seq {
		if genErr != nil {
			runErr = NewGenerationFailure(name, genErr)
			break
		}
		// Cooperative cancellation check between items. Aborts the batch
		// like a generation failure; never breaks per-item isolation.
		if ctxErr := ctx.Err(); ctxErr != nil {
			runErr = ctxErr
			break
		}

		index++
		e.formatter.PrintItemStart(index)

		prompt := Interpolate(template, item.Variables)
		itemEvent := &ItemExecutionEvent{
			BatchID:      e.batchID,
			IterableName: name,
			Index:        index,
			Item:         item,
			Prompt:       prompt,
			StartTime:    time.Now(),
		}
		e.callbacks.BeforeItemExecution(ctx, itemEvent)

		output, actionErr := e.runner.Invoke(ctx, prompt)

		itemEvent.Result = output
		itemEvent.EndTime = time.Now()
		itemEvent.Duration = itemEvent.EndTime.Sub(itemEvent.StartTime)
		itemEvent.Error = actionErr
		e.callbacks.AfterItemExecution(ctx, itemEvent)

		logEntry := &ItemLogEntry{
			BatchID:      e.batchID,
			IterableName: name,
			Index:        index,
			Prompt:       prompt,
			Result:       output,
			StartTime:    itemEvent.StartTime,
			Duration:     itemEvent.Duration.Seconds(),
		}
		if actionErr != nil {
			logEntry.Error = actionErr.Error()
		}
		if logErr := e.batchLogger.LogItem(ctx, logEntry); logErr != nil {
			e.logger.Error("failed to log item", "index", index, "error", logErr)
		}

		if actionErr != nil {
			// Failure isolation: report and continue with the next item.
			failure := NewActionFailure(index, actionErr)
			e.formatter.PrintItemError(index, failure)
			e.logger.Error("action failed", "index", index, "error", actionErr)
			result.Failures = append(result.Failures, ItemFailure{
				Index:  index,
				Prompt: prompt,
				Error:  failure,
			})
		}

		// Discard whatever the action mutated before the next item.
		e.execContext.Restore(checkpoint)
	}

	result.Processed = index
	result.EndTime = time.Now()
	e.callbacks.AfterBatchExecution(ctx, &BatchExecutionEvent{
		BatchID:      e.batchID,
		IterableName: name,
		Template:     template,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Duration:     result.EndTime.Sub(result.StartTime),
		Processed:    result.Processed,
		Failed:       len(result.Failures),
		Error:        runErr,
	})

	if runErr != nil {
		e.logger.Error("batch aborted", "processed", index, "error", runErr)
		return result, runErr
	}
	e.formatter.PrintBatchSummary(result.Processed, len(result.Failures))
	e.logger.Info("batch completed", "processed", result.Processed, "failed", len(result.Failures))
	return result, nil
}
