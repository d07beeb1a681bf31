package pipe

import "sync"

// Future is a one-shot container for a value that may not exist yet. Async
// step functions return one; the execution engine awaits it transparently.
// Settling is first-write-wins: after Complete or Abort, later calls are
// no-ops.
type Future struct {
	once sync.Once
	done chan struct{}
	val  any
	err  error
}

func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Complete settles the future with a value.
func (f *Future) Complete(v any) {
	f.once.Do(func() {
		f.val = v
		close(f.done)
	})
}

// Abort settles the future with an error.
func (f *Future) Abort(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Await blocks until the future settles. There is no cancellation; once a
// pipeline is invoked it runs to completion or error.
func (f *Future) Await() (any, error) {
	<-f.done
	return f.val, f.err
}

// Done is closed when the future has settled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Go runs fn on its own goroutine and returns the future it settles.
func Go(fn func() (any, error)) *Future {
	f := NewFuture()
	go func() {
		v, err := fn()
		if err != nil {
			f.Abort(err)
			return
		}
		f.Complete(v)
	}()
	return f
}

// then derives a future that completes with fn applied to f's value, or
// aborts with f's error.
func then(f *Future, fn func(any) any) *Future {
	out := NewFuture()
	go func() {
		v, err := f.Await()
		if err != nil {
			out.Abort(err)
			return
		}
		out.Complete(fn(v))
	}()
	return out
}
