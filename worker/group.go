package worker

import (
	"errors"
	"sync"
)

// Group starts workers and joins them all. The zero value is ready to use.
type Group struct {
	mu      sync.Mutex
	workers []*Worker
}

// Go creates and starts a worker. The worker is tracked by the group only if
// it started.
func (g *Group) Go(task Task, cfg Config) (*Worker, error) {
	w := New(task, cfg)
	if err := w.Start(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.workers = append(g.workers, w)
	g.mu.Unlock()
	return w, nil
}

// Wait joins every worker started so far.
func (g *Group) Wait() {
	for _, w := range g.Workers() {
		w.Join()
	}
}

// Workers returns a snapshot of the started workers in start order.
func (g *Group) Workers() []*Worker {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Worker, len(g.workers))
	copy(out, g.workers)
	return out
}

// Err joins the errors of all terminated workers. Call it after Wait.
func (g *Group) Err() error {
	var errs []error
	for _, w := range g.Workers() {
		if err := w.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
