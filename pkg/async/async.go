// Package async runs domain operations on a bounded worker pool and hands the
// caller a Task future to await. The request goroutine is never blocked by the
// operation itself; it decides when (and whether) to wait.
package async

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// Task is the handle for one in-flight operation. It resolves exactly once
// with either a value or an error. Tasks do not support cancellation of the
// underlying work; Wait respects the caller's context only.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newTask[T any]() *Task[T] {
	return &Task[T]{done: make(chan struct{})}
}

func (t *Task[T]) resolve(val T, err error) {
	t.val = val
	t.err = err
	close(t.done)
}

// Wait blocks until the task resolves or ctx is done, whichever comes first.
// A ctx error abandons the wait, not the work.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done exposes the completion channel for select-based callers.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Pool bounds the number of concurrently executing tasks.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a pool allowing up to size concurrent tasks. Sizes below
// one are clamped to one.
func NewPool(size int64) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: semaphore.NewWeighted(size)}
}

// Submit schedules fn on the pool and returns immediately with a Task. fn
// starts once a worker slot frees up. Panics inside fn resolve the task with
// an error rather than crashing the process.
func Submit[T any](ctx context.Context, p *Pool, fn func(ctx context.Context) (T, error)) *Task[T] {
	t := newTask[T]()
	go func() {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			var zero T
			t.resolve(zero, err)
			return
		}
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				t.resolve(zero, fmt.Errorf("task panic: %v", r))
			}
		}()
		val, err := fn(ctx)
		t.resolve(val, err)
	}()
	return t
}

// Resolved returns an already-completed task, useful when a precondition
// fails before any work is scheduled.
func Resolved[T any](val T, err error) *Task[T] {
	t := newTask[T]()
	t.resolve(val, err)
	return t
}
