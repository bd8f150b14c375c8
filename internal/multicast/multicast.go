// Package multicast implements the observer registry behind sinks and
// variables: it tracks the current set of observer callbacks and fans each
// sent value out to all of them.
package multicast

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
	"github.com/rs/zerolog"
)

// Registry maintains observer callbacks in registration order. Send holds
// the registry lock for the whole fan-out, so a Subscribe or Cancel racing
// with an in-flight Send lands strictly before or strictly after the
// broadcast, and once Cancel returns no further value is delivered to that
// observer.
//
// Observer callbacks therefore run under the registry lock. Calling Send,
// Subscribe or Cancel on the same registry from inside a callback panics.
type Registry[V any] struct {
	mu     sync.Mutex
	holder atomic.Int64 // goroutine id currently holding mu, 0 if free
	log    *zerolog.Logger

	nextID    uint64
	observers []entry[V]
}

type entry[V any] struct {
	id uint64
	fn func(V)
}

// New creates an empty registry. Subscribe, send and cancel events are
// traced on log.
func New[V any](log *zerolog.Logger) *Registry[V] {
	return &Registry[V]{log: log}
}

// Subscribe registers fn to receive future Send values and returns its
// cancellation handle. Observers are invoked in registration order.
func (r *Registry[V]) Subscribe(fn func(V)) *Subscription {
	r.lock()
	id := r.nextID
	r.nextID++
	r.observers = append(r.observers, entry[V]{id: id, fn: fn})
	total := len(r.observers)
	r.unlock()

	r.log.Trace().Uint64("observer", id).Int("total", total).Msg("observer subscribed")

	return &Subscription{cancel: func() { r.remove(id) }}
}

// Send invokes every currently registered observer with v, synchronously on
// the calling goroutine, in registration order.
func (r *Registry[V]) Send(v V) {
	r.lock()
	defer r.unlock()

	for _, e := range r.observers {
		e.fn(v)
	}
}

func (r *Registry[V]) remove(id uint64) {
	r.lock()
	defer r.unlock()

	for i, e := range r.observers {
		if e.id == id {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			r.log.Trace().Uint64("observer", id).Int("total", len(r.observers)).Msg("observer cancelled")
			return
		}
	}
}

func (r *Registry[V]) lock() {
	gid := goid.Get()
	if r.holder.Load() == gid {
		panic("pulse: reentrant registry use (observer called back in during a broadcast)")
	}

	r.mu.Lock()
	r.holder.Store(gid)
}

func (r *Registry[V]) unlock() {
	r.holder.Store(0)
	r.mu.Unlock()
}

// Subscription cancels a single observer registration. Cancel is idempotent
// and safe for concurrent use.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}
