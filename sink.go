package pulse

import "github.com/ldelacroix/pulse/internal/multicast"

// Sink pairs a private observer registry with a public Send entry point.
// Only the holder of the Sink can emit; everyone else observes through
// Signal. Dropping the Sink does not unsubscribe existing observers.
type Sink[V any] struct {
	observers *multicast.Registry[V]
}

// NewSink creates a sink with an empty registry.
func NewSink[V any](opts ...Option) *Sink[V] {
	o := defaultOptions()
	o.apply(opts...)

	return &Sink[V]{observers: multicast.New[V](o.logger)}
}

// Send broadcasts v synchronously to every observer currently subscribed.
// There is no buffering: observers subscribed after Send never see v.
func (s *Sink[V]) Send(v V) {
	s.observers.Send(v)
}

// Signal returns a fresh Signal bound to the sink's registry. All signals
// returned by the same sink are equivalent observation points.
func (s *Sink[V]) Signal() Signal[V] {
	return Signal[V]{subscribe: s.Subscribe}
}

// Subscribe registers observer for all future Send calls.
func (s *Sink[V]) Subscribe(observer Observer[V]) Subscription {
	return s.observers.Subscribe(observer)
}
