package pulse

import "sync"

// Executor runs a unit of work in a chosen execution context.
type Executor interface {
	Execute(fn func())
}

// Immediate runs work inline on the calling goroutine.
type Immediate struct{}

func (Immediate) Execute(fn func()) { fn() }

// Concurrent runs each unit of work on its own goroutine. Submission order
// is not preserved.
type Concurrent struct{}

func (Concurrent) Execute(fn func()) { go fn() }

// Serial runs work on a single background goroutine, one unit at a time, in
// submission order. Execute never blocks the submitter.
type Serial struct {
	mu    sync.Mutex
	queue []func()

	wake chan struct{}
	done chan struct{}
	stop sync.Once
}

// NewSerial starts the drain goroutine and returns the executor. Call Close
// when done with it.
func NewSerial() *Serial {
	e := &Serial{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	go e.loop()

	return e
}

// Execute queues fn for execution after all previously queued work.
func (e *Serial) Execute(fn func()) {
	e.mu.Lock()
	e.queue = append(e.queue, fn)
	e.mu.Unlock()

	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Close stops the drain goroutine once it finishes the unit of work in
// flight. Work still queued is discarded. Close is idempotent.
func (e *Serial) Close() {
	e.stop.Do(func() { close(e.done) })
}

func (e *Serial) loop() {
	for {
		select {
		case <-e.done:
			return
		case <-e.wake:
			e.drain()
		}
	}
}

func (e *Serial) drain() {
	for {
		e.mu.Lock()
		if len(e.queue) == 0 {
			e.mu.Unlock()
			return
		}
		fn := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		select {
		case <-e.done:
			return
		default:
		}

		fn()
	}
}
