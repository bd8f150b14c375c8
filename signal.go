// Package pulse provides push-based observable primitives: a composable
// read-only Signal, a write-only Sink, and a mutable observable Variable
// with a read-only Constant view. Producers broadcast value changes to any
// number of observers without either side knowing about the other, and a
// newly attached observer always sees a consistent, gap-free view of state.
package pulse

// Observer receives values emitted by a source.
type Observer[V any] func(V)

// Subscription cancels a prior Subscribe call. Cancelling stops deliveries
// to that observer only; other subscribers and the source are unaffected.
type Subscription interface {
	Cancel()
}

// Subscribable is anything that can be observed. Signal, Sink, Variable and
// Constant all satisfy it, and the composition operators (Map, ObserveOn)
// are defined against it so any future source adopts them for free.
type Subscribable[V any] interface {
	// Subscribe registers observer and returns its cancellation handle.
	// Each call yields an independent subscription.
	Subscribe(observer Observer[V]) Subscription
}

// Signal is a read-only handle around a producer function. It carries no
// state beyond the captured producer, so copies of a Signal share the same
// producer and are interchangeable.
//
// Observer callbacks may run on the producing goroutine, inside the
// producer's critical section. They must not block indefinitely, and they
// must not call back into the source delivering to them (see Variable).
type Signal[V any] struct {
	subscribe func(Observer[V]) Subscription
}

// NewSignal wraps a producer function in a Signal, letting external sources
// adopt the composition operators.
func NewSignal[V any](subscribe func(Observer[V]) Subscription) Signal[V] {
	return Signal[V]{subscribe: subscribe}
}

// Subscribe registers observer with the underlying producer.
func (s Signal[V]) Subscribe(observer Observer[V]) Subscription {
	return s.subscribe(observer)
}

// Map derives a Signal emitting fn applied to each value src emits, in
// emission order. Every subscriber to the result holds its own upstream
// subscription and runs fn independently; nothing is shared or cached, so
// there is no hot/cold split to reason about. A panic in fn propagates to
// whoever triggered the emission.
func Map[V, T any](src Subscribable[V], fn func(V) T) Signal[T] {
	return Signal[T]{subscribe: func(observer Observer[T]) Subscription {
		return src.Subscribe(func(v V) {
			observer(fn(v))
		})
	}}
}

// ObserveOn derives a Signal that redelivers each value through e instead
// of the producing goroutine. Ordering across the executor boundary is
// whatever e provides: Serial preserves submission order, Concurrent does
// not.
func (s Signal[V]) ObserveOn(e Executor) Signal[V] {
	return Signal[V]{subscribe: func(observer Observer[V]) Subscription {
		return s.subscribe(func(v V) {
			e.Execute(func() { observer(v) })
		})
	}}
}
