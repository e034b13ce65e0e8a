package iterables

import (
	"sync"
)

// Checkpoint is an opaque snapshot of execution-context state. Only the
// ExecutionContext that produced a checkpoint knows how to restore it.
type Checkpoint any

// ExecutionContext is the mutable state an action runner can affect during a
// batch. Snapshot and Restore are synchronous and idempotent: restoring the
// same checkpoint repeatedly always produces the same state.
type ExecutionContext interface {

	// Snapshot captures the current state as an opaque checkpoint.
	Snapshot() Checkpoint

	// Restore resets the state to a previously captured checkpoint.
	Restore(checkpoint Checkpoint)
}

// Confirm the interfaces are implemented correctly.
var _ ExecutionContext = (*VariableContext)(nil)

// variableCheckpoint is the concrete checkpoint type for VariableContext.
type variableCheckpoint struct {
	variables map[string]any
}

// VariableContext is a mutable variable bag implementing ExecutionContext.
// The snapshot boundary is exactly the variable map it owns: restoring a
// checkpoint discards variable mutations and nothing else, so legitimate
// side effects an action performs outside this context are never masked.
type VariableContext struct {
	mutex     sync.RWMutex
	variables map[string]any
}

// NewVariableContext creates a variable context seeded with the given
// variables.
func NewVariableContext(variables map[string]any) *VariableContext {
	return &VariableContext{variables: copyMap(variables)}
}

// SetVariable sets the value of a variable.
func (c *VariableContext) SetVariable(key string, value any) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.variables[key] = value
}

// GetVariable returns the value of a variable.
func (c *VariableContext) GetVariable(key string) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	value, exists := c.variables[key]
	return value, exists
}

// DeleteVariable removes a variable.
func (c *VariableContext) DeleteVariable(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.variables, key)
}

// Variables returns a copy of the current variable map.
func (c *VariableContext) Variables() map[string]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return copyMap(c.variables)
}

// Snapshot captures a copy of the current variables.
func (c *VariableContext) Snapshot() Checkpoint {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return &variableCheckpoint{variables: copyMap(c.variables)}
}

// Restore resets the variables to a snapshot previously returned by
// Snapshot. Checkpoints from other context implementations are ignored.
func (c *VariableContext) Restore(checkpoint Checkpoint) {
	snapshot, ok := checkpoint.(*variableCheckpoint)
	if !ok {
		return
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.variables = copyMap(snapshot.variables)
}
