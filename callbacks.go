package iterables

import (
	"context"
	"time"
)

// BatchCallbacks defines the callback interface for batch execution events
type BatchCallbacks interface {
	// Batch-level callbacks
	BeforeBatchExecution(ctx context.Context, event *BatchExecutionEvent)
	AfterBatchExecution(ctx context.Context, event *BatchExecutionEvent)

	// Item-level callbacks
	BeforeItemExecution(ctx context.Context, event *ItemExecutionEvent)
	AfterItemExecution(ctx context.Context, event *ItemExecutionEvent)
}

// BatchExecutionEvent provides context for batch-level execution events
type BatchExecutionEvent struct {
	BatchID      string
	IterableName string
	Template     string
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	Processed    int
	Failed       int
	Error        error
}

// ItemExecutionEvent provides context for item-level execution events
type ItemExecutionEvent struct {
	BatchID      string
	IterableName string
	Index        int
	Item         Item
	Prompt       string
	Result       any
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	Error        error
}

// BaseBatchCallbacks provides a default implementation that does nothing.
// Embed this in your own callbacks to override only the events you need.
type BaseBatchCallbacks struct{}

func (c *BaseBatchCallbacks) BeforeBatchExecution(ctx context.Context, event *BatchExecutionEvent) {
	// noop
}

func (c *BaseBatchCallbacks) AfterBatchExecution(ctx context.Context, event *BatchExecutionEvent) {
	// noop
}

func (c *BaseBatchCallbacks) BeforeItemExecution(ctx context.Context, event *ItemExecutionEvent) {
	// noop
}

func (c *BaseBatchCallbacks) AfterItemExecution(ctx context.Context, event *ItemExecutionEvent) {
	// noop
}

// CallbackChain allows chaining multiple callback implementations
type CallbackChain struct {
	callbacks []BatchCallbacks
}

// NewCallbackChain creates a new callback chain
func NewCallbackChain(callbacks ...BatchCallbacks) *CallbackChain {
	return &CallbackChain{callbacks: callbacks}
}

// Add adds a callback to the chain
func (c *CallbackChain) Add(callback BatchCallbacks) {
	c.callbacks = append(c.callbacks, callback)
}

func (c *CallbackChain) BeforeBatchExecution(ctx context.Context, event *BatchExecutionEvent) {
	for _, callback := range c.callbacks {
		callback.BeforeBatchExecution(ctx, event)
	}
}

func (c *CallbackChain) AfterBatchExecution(ctx context.Context, event *BatchExecutionEvent) {
	for _, callback := range c.callbacks {
		callback.AfterBatchExecution(ctx, event)
	}
}

func (c *CallbackChain) BeforeItemExecution(ctx context.Context, event *ItemExecutionEvent) {
	for _, callback := range c.callbacks {
		callback.BeforeItemExecution(ctx, event)
	}
}

func (c *CallbackChain) AfterItemExecution(ctx context.Context, event *ItemExecutionEvent) {
	for _, callback := range c.callbacks {
		callback.AfterItemExecution(ctx, event)
	}
}
