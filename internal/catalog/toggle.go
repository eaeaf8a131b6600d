package catalog

import (
	"context"
	"errors"
	"sync"
)

// Phase is the lifecycle position of an optimistic change.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseCommitted
	PhaseRolledBack
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseCommitted:
		return "committed"
	case PhaseRolledBack:
		return "rolled back"
	}
	return "idle"
}

// ErrTogglePending is returned by Begin while an earlier change is unresolved.
var ErrTogglePending = errors.New("change already pending")

// Toggle applies a value optimistically and restores the previous value if
// the server refuses it. apply writes a value into local state; it is called
// with the new value on Begin and with the previous value on Rollback.
type Toggle[T any] struct {
	mu      sync.Mutex
	current T
	prev    T
	phase   Phase
	apply   func(T)
}

// NewToggle returns an idle toggle holding current.
func NewToggle[T any](current T, apply func(T)) *Toggle[T] {
	return &Toggle[T]{current: current, apply: apply}
}

// Begin applies next locally and marks the change pending.
func (t *Toggle[T]) Begin(next T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase == PhasePending {
		return ErrTogglePending
	}
	t.prev, t.current = t.current, next
	t.phase = PhasePending
	if t.apply != nil {
		t.apply(next)
	}
	return nil
}

// Commit keeps the pending value.
func (t *Toggle[T]) Commit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase == PhasePending {
		t.phase = PhaseCommitted
	}
}

// Rollback restores the value held before Begin.
func (t *Toggle[T]) Rollback() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.phase != PhasePending {
		return
	}
	t.current = t.prev
	t.phase = PhaseRolledBack
	if t.apply != nil {
		t.apply(t.prev)
	}
}

// Phase returns the current phase.
func (t *Toggle[T]) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase
}

// Value returns the locally visible value.
func (t *Toggle[T]) Value() T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Run applies next, calls fn, then commits on success or rolls back on
// error. fn's error is returned unchanged.
func (t *Toggle[T]) Run(ctx context.Context, next T, fn func(ctx context.Context) error) error {
	if err := t.Begin(next); err != nil {
		return err
	}
	if err := fn(ctx); err != nil {
		t.Rollback()
		return err
	}
	t.Commit()
	return nil
}
