// Package guard provides a mutex-guarded value with scoped access.
// The lock itself is never exposed; callers get at the value only through
// callbacks that run while the lock is held.
package guard

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Cell wraps a single mutable value behind a mutex.
//
// A goroutine that re-enters a Cell it already holds (by calling
// Synchronized or Modify from inside another Synchronized or Modify
// callback on the same cell) panics instead of deadlocking.
type Cell[V any] struct {
	mu     sync.Mutex
	holder atomic.Int64 // goroutine id currently holding mu, 0 if free
	value  V
}

// NewCell creates a cell holding initial.
func NewCell[V any](initial V) *Cell[V] {
	return &Cell[V]{value: initial}
}

// Synchronized runs fn with read access to the value while holding the lock.
// Results come back through closure capture.
func (c *Cell[V]) Synchronized(fn func(V)) {
	c.lock()
	defer c.unlock()

	fn(c.value)
}

// Modify runs fn with mutable access to the value while holding the lock.
func (c *Cell[V]) Modify(fn func(*V)) {
	c.lock()
	defer c.unlock()

	fn(&c.value)
}

func (c *Cell[V]) lock() {
	gid := goid.Get()
	if c.holder.Load() == gid {
		panic("pulse: reentrant access to a guarded value (callback touched its own source)")
	}

	c.mu.Lock()
	c.holder.Store(gid)
}

func (c *Cell[V]) unlock() {
	c.holder.Store(0)
	c.mu.Unlock()
}
