// Package counter implements a shared integer that concurrent workers can
// increment without lost updates, plus a harness that runs a fixed number of
// incrementing workers and reads the result once they have all been joined.
package counter

import "sync"

// Incrementer is the method set the run harness drives.
type Incrementer interface {
	Increment()
	Get() int
}

// Counter is an integer guarded by a mutex. The zero value is a counter at 0.
type Counter struct {
	mu    sync.Mutex
	value int
}

// New returns a counter at 0.
func New() *Counter {
	return &Counter{}
}

// Increment adds 1 inside the critical section.
func (c *Counter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
}

// Get reads the value under the same lock as Increment.
func (c *Counter) Get() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// UnsafeCounter has the same method set as Counter but no lock. value++ is a
// load, an add and a store, so concurrent increments interleave and some are
// lost. It exists to be compared against Counter; never share one between
// goroutines in real code.
type UnsafeCounter struct {
	value int
}

func (c *UnsafeCounter) Increment() { c.value++ }
func (c *UnsafeCounter) Get() int   { return c.value }
