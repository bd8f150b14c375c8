package pulse

import (
	"github.com/ldelacroix/pulse/internal/guard"
	"github.com/ldelacroix/pulse/internal/multicast"
)

// Variable is a mutable observable cell: the authoritative value lives in a
// guarded cell, the change feed in a private registry, and the two are only
// ever updated together, under the same lock.
//
// That single lock is what makes snapshot-then-subscribe atomic. A write
// stores the new value and broadcasts it as one critical section; a new
// subscriber's initial replay and its registration happen in another. The
// two sections cannot interleave, so a write racing with a subscription
// either lands entirely before it (the subscriber replays the new value and
// does not re-receive its broadcast) or entirely after it (the subscriber
// replays the old value, then receives the broadcast). A change is never
// lost and never delivered twice.
//
// Observer callbacks run inside the writer's critical section. They must
// not block indefinitely, and they must not touch the same variable again:
// a reentrant Read, Write, Modify or Subscribe from inside a callback
// panics rather than deadlocking.
type Variable[V any] struct {
	cell      *guard.Cell[V]
	observers *multicast.Registry[V]
}

// NewVariable creates a variable holding initial.
func NewVariable[V any](initial V, opts ...Option) *Variable[V] {
	o := defaultOptions()
	o.apply(opts...)

	return &Variable[V]{
		cell:      guard.NewCell(initial),
		observers: multicast.New[V](o.logger),
	}
}

// Read returns the current value. A write's broadcast completes before the
// write returns, so a concurrent Read observes either the old value or the
// new one, never a torn intermediate.
func (v *Variable[V]) Read() V {
	var cur V
	v.cell.Synchronized(func(x V) { cur = x })
	return cur
}

// Write stores x and broadcasts it to all subscribers as one atomic unit.
// Writes to one variable are totally ordered; every observer subscribed
// before a write receives its broadcast exactly once, in write order.
func (v *Variable[V]) Write(x V) {
	v.cell.Modify(func(p *V) {
		*p = x
		v.observers.Send(x)
	})
}

// Modify mutates the value in place and broadcasts the result, under the
// same critical section as Write.
func (v *Variable[V]) Modify(fn func(*V)) {
	v.cell.Modify(func(p *V) {
		fn(p)
		v.observers.Send(*p)
	})
}

// Subscribe delivers the current value to observer synchronously, then
// every subsequent change. Replay and registration share the variable's
// lock, so no change can land between them.
func (v *Variable[V]) Subscribe(observer Observer[V]) Subscription {
	var sub Subscription
	v.cell.Synchronized(func(cur V) {
		observer(cur)
		sub = v.observers.Subscribe(observer)
	})
	return sub
}

// Signal returns the variable's replay-current-then-stream-changes signal.
func (v *Variable[V]) Signal() Signal[V] {
	return Signal[V]{subscribe: v.Subscribe}
}

// Constant returns a read-only view aliasing this variable.
func (v *Variable[V]) Constant() Constant[V] {
	return Constant[V]{backing: v}
}
