package iterables

import (
	"context"
)

// Confirm the interfaces are implemented correctly.
var _ ActionRunner = (*ActionRunnerFunc)(nil)

// ActionRunner executes the externally supplied action once per item, with
// the interpolated template text as input. Failures must be returned, not
// panicked: the batch executor converts them into reportable, per-item
// action failures.
type ActionRunner interface {

	// Invoke runs the action with the given text.
	Invoke(ctx context.Context, text string) (any, error)
}

// ActionRunnerFunc wraps a function for use as an ActionRunner.
type ActionRunnerFunc struct {
	fn func(ctx context.Context, text string) (any, error)
}

// NewActionRunnerFunc returns an ActionRunner for the given function.
func NewActionRunnerFunc(fn func(ctx context.Context, text string) (any, error)) *ActionRunnerFunc {
	return &ActionRunnerFunc{fn: fn}
}

// Invoke runs the wrapped function.
func (r *ActionRunnerFunc) Invoke(ctx context.Context, text string) (any, error) {
	return r.fn(ctx, text)
}
