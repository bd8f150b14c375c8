package pulse

// Constant is a read-only view over a Variable. It has no storage of its
// own: Read and Subscribe delegate to the backing variable by reference, so
// two Constants built from the same Variable observe identical state, and
// nothing reachable from a Constant can mutate it.
type Constant[V any] struct {
	backing *Variable[V]
}

// NewConstant creates a constant holding v. The backing variable is private
// to the constant, so the observed value can never change.
func NewConstant[V any](v V, opts ...Option) Constant[V] {
	return Constant[V]{backing: NewVariable(v, opts...)}
}

// Read returns the current value of the backing variable.
func (c Constant[V]) Read() V {
	return c.backing.Read()
}

// Subscribe delivers the current value synchronously, then any change made
// through the originating Variable.
func (c Constant[V]) Subscribe(observer Observer[V]) Subscription {
	return c.backing.Subscribe(observer)
}

// Signal returns the backing variable's replay-then-stream signal.
func (c Constant[V]) Signal() Signal[V] {
	return c.backing.Signal()
}
