package multicast

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newRegistry[V any]() *Registry[V] {
	nop := zerolog.Nop()
	return New[V](&nop)
}

func TestRegistry(t *testing.T) {
	t.Run("fans out in registration order", func(t *testing.T) {
		reg := newRegistry[int]()

		log := []string{}
		reg.Subscribe(func(v int) { log = append(log, "first") })
		reg.Subscribe(func(v int) { log = append(log, "second") })
		reg.Subscribe(func(v int) { log = append(log, "third") })

		reg.Send(0)

		assert.Equal(t, []string{"first", "second", "third"}, log)
	})

	t.Run("send with no observers is a no-op", func(t *testing.T) {
		reg := newRegistry[int]()
		reg.Send(1)
	})

	t.Run("cancel removes one observer only", func(t *testing.T) {
		reg := newRegistry[int]()

		kept := []int{}
		dropped := []int{}
		reg.Subscribe(func(v int) { kept = append(kept, v) })
		sub := reg.Subscribe(func(v int) { dropped = append(dropped, v) })

		reg.Send(1)
		sub.Cancel()
		reg.Send(2)

		assert.Equal(t, []int{1, 2}, kept)
		assert.Equal(t, []int{1}, dropped)
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		reg := newRegistry[int]()

		calls := 0
		sub := reg.Subscribe(func(v int) { calls++ })

		sub.Cancel()
		sub.Cancel()
		reg.Send(1)

		assert.Equal(t, 0, calls)
	})

	t.Run("independent subscriptions for the same callback", func(t *testing.T) {
		reg := newRegistry[int]()

		calls := 0
		fn := func(v int) { calls++ }
		first := reg.Subscribe(fn)
		reg.Subscribe(fn)

		reg.Send(1)
		assert.Equal(t, 2, calls)

		first.Cancel()
		reg.Send(2)
		assert.Equal(t, 3, calls)
	})

	t.Run("reentrant use panics", func(t *testing.T) {
		reg := newRegistry[int]()
		reg.Subscribe(func(v int) {
			reg.Send(v + 1)
		})

		assert.Panics(t, func() { reg.Send(1) })
	})

	t.Run("concurrent subscribe and send", func(t *testing.T) {
		reg := newRegistry[int]()

		var wg sync.WaitGroup
		var mu sync.Mutex
		total := 0

		for range 8 {
			wg.Go(func() {
				reg.Subscribe(func(v int) {
					mu.Lock()
					total += v
					mu.Unlock()
				})
			})
			wg.Go(func() {
				reg.Send(1)
			})
		}
		wg.Wait()

		// every observer present at the start of a send got it exactly once
		reg.Send(10)
		mu.Lock()
		defer mu.Unlock()
		assert.GreaterOrEqual(t, total, 80)
	})
}
