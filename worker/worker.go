// Package worker runs a task on its own goroutine with an explicit lifecycle:
// create it, start it, ask whether it is still alive, and join it.
//
// Goroutines have no handle, no name and no "is alive" query. A Worker adds
// those on top of a goroutine plus a done channel, which is what the join
// operation waits on.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
)

// Task is the body a worker runs.
type Task func()

// Runner is implemented by types that carry their own body, for example a
// struct that keeps per-worker state between iterations.
type Runner interface {
	Run()
}

// FromRunner adapts a Runner to a Task.
func FromRunner(r Runner) Task {
	return r.Run
}

// Priority is a scheduling hint. The Go scheduler has no goroutine
// priorities, so the only effect is that low-priority workers yield once
// before running their task. It never guarantees an execution order.
type Priority int

const (
	MinPriority  Priority = 1
	NormPriority Priority = 5
	MaxPriority  Priority = 10
)

// Validate reports whether p is within [MinPriority, MaxPriority].
func (p Priority) Validate() error {
	if p < MinPriority || p > MaxPriority {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidPriority, int(p), MinPriority, MaxPriority)
	}
	return nil
}

func (p Priority) String() string {
	switch p {
	case MinPriority:
		return "min"
	case NormPriority:
		return "norm"
	case MaxPriority:
		return "max"
	default:
		return fmt.Sprintf("%d", int(p))
	}
}

// State is the lifecycle position of a Worker.
type State int32

const (
	StateNew State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Config holds worker construction parameters.
type Config struct {
	// Name identifies the worker in logs. Defaults to "worker-" followed by
	// the first eight characters of its ID.
	Name string

	// Priority is a scheduling hint. Zero means NormPriority.
	Priority Priority

	// Logger is used for lifecycle output. If nil, log.Default() is used.
	Logger *log.Logger
}

func (c *Config) withDefaults(id uuid.UUID) Config {
	out := *c
	if out.Name == "" {
		out.Name = "worker-" + id.String()[:8]
	}
	if out.Priority == 0 {
		out.Priority = NormPriority
	}
	if out.Logger == nil {
		out.Logger = log.Default()
	}
	return out
}

// Worker runs one Task on one goroutine.
//
// Lifecycle:
//
//	w := worker.New(task, cfg) // StateNew
//	w.Start()                  // StateRunning, Alive() == true
//	w.Join()                   // blocks until StateTerminated
type Worker struct {
	id    uuid.UUID
	cfg   Config
	task  Task
	state atomic.Int32
	done  chan struct{}

	// err is written by the worker goroutine before done is closed.
	err error
}

// New creates a worker in StateNew. Nothing runs until Start is called.
func New(task Task, cfg Config) *Worker {
	id := uuid.New()
	return &Worker{
		id:   id,
		cfg:  cfg.withDefaults(id),
		task: task,
		done: make(chan struct{}),
	}
}

func (w *Worker) ID() uuid.UUID      { return w.id }
func (w *Worker) Name() string       { return w.cfg.Name }
func (w *Worker) Priority() Priority { return w.cfg.Priority }
func (w *Worker) State() State       { return State(w.state.Load()) }

// Alive reports whether the worker has been started and its task has not
// returned yet. The state flips to running before Start returns, so Alive
// is always true immediately after a successful Start, even if the task
// body has not been scheduled.
func (w *Worker) Alive() bool {
	return w.State() == StateRunning
}

// Start launches the worker goroutine. A worker can be started once;
// further calls return ErrAlreadyStarted.
func (w *Worker) Start() error {
	if err := w.cfg.Priority.Validate(); err != nil {
		return fmt.Errorf("worker %s: %w", w.cfg.Name, err)
	}
	if !w.state.CompareAndSwap(int32(StateNew), int32(StateRunning)) {
		return fmt.Errorf("worker %s: %w", w.cfg.Name, ErrAlreadyStarted)
	}

	w.cfg.Logger.Printf("[worker %s] started (id=%s priority=%s)", w.cfg.Name, w.id, w.cfg.Priority)
	go w.run()
	return nil
}

func (w *Worker) run() {
	defer close(w.done)
	defer w.state.Store(int32(StateTerminated))
	defer func() {
		if r := recover(); r != nil {
			w.err = fmt.Errorf("worker %s: %w: %v", w.cfg.Name, ErrPanicked, r)
			w.cfg.Logger.Printf("[worker %s] terminated by panic: %v", w.cfg.Name, r)
		}
	}()

	if w.cfg.Priority < NormPriority {
		runtime.Gosched()
	}
	if w.task != nil {
		w.task()
	}
	w.cfg.Logger.Printf("[worker %s] exited", w.cfg.Name)
}

// Join blocks until the worker terminates. Joining a worker that was never
// started returns immediately.
func (w *Worker) Join() {
	if w.State() == StateNew {
		return
	}
	<-w.done
}

// JoinContext is Join bounded by ctx. The worker itself keeps running when
// ctx ends; only the wait is abandoned.
func (w *Worker) JoinContext(ctx context.Context) error {
	if w.State() == StateNew {
		return nil
	}
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("join %s: %w", w.cfg.Name, ctx.Err())
	}
}

// Done returns a channel that is closed when the worker terminates.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Err returns the recovered panic of a terminated worker, wrapped with
// ErrPanicked. It returns nil while the worker is still running.
func (w *Worker) Err() error {
	select {
	case <-w.done:
		return w.err
	default:
		return nil
	}
}

// Sentinel errors returned by workers.
var (
	ErrAlreadyStarted  = errors.New("worker already started")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrPanicked        = errors.New("worker panicked")
)
