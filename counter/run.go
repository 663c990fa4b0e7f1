package counter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/marcodamonte/concurrency-practice/worker"
)

// Config describes one run: how many workers, and how many increments each.
type Config struct {
	Workers    int
	Increments int

	// Logger receives worker lifecycle output. If nil, log.Default() is used.
	Logger *log.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Logger == nil {
		out.Logger = log.Default()
	}
	return out
}

func (c *Config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers = %d", ErrInvalidConfig, c.Workers)
	}
	if c.Increments < 0 {
		return fmt.Errorf("%w: increments = %d", ErrInvalidConfig, c.Increments)
	}
	if c.Workers > 0 && c.Increments > math.MaxInt/c.Workers {
		return fmt.Errorf("%w: %d workers × %d increments overflows int", ErrInvalidConfig, c.Workers, c.Increments)
	}
	return nil
}

// Result is what a run observed after every worker was joined.
type Result struct {
	Workers    int           `json:"workers"`
	Increments int           `json:"increments"`
	Expected   int           `json:"expected"`
	Final      int           `json:"final"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// Lost is the number of increments that did not make it into Final.
func (r Result) Lost() int {
	return r.Expected - r.Final
}

// Run increments a fresh Counter with cfg.Workers concurrent workers.
func Run(cfg Config) (Result, error) {
	return RunWithContext(context.Background(), New(), cfg)
}

// RunContext is Run, abandoned early when ctx ends.
func RunContext(ctx context.Context, cfg Config) (Result, error) {
	return RunWithContext(ctx, New(), cfg)
}

// RunWith starts cfg.Workers workers, each calling c.Increment cfg.Increments
// times, joins all of them and only then reads c once.
func RunWith(c Incrementer, cfg Config) (Result, error) {
	return RunWithContext(context.Background(), c, cfg)
}

// RunWithContext is RunWith with a stop signal. Workers check ctx between
// increments and return once it is done; if any worker stopped early the run
// reports ctx's error instead of a Result, since the count is partial.
func RunWithContext(ctx context.Context, c Incrementer, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()

	var stopped atomic.Bool
	var g worker.Group
	for i := 0; i < cfg.Workers; i++ {
		_, err := g.Go(func() {
			for j := 0; j < cfg.Increments; j++ {
				if ctx.Err() != nil {
					stopped.Store(true)
					return
				}
				c.Increment()
			}
		}, worker.Config{
			Name:   fmt.Sprintf("incrementer-%d", i+1),
			Logger: cfg.Logger,
		})
		if err != nil {
			g.Wait()
			return Result{}, fmt.Errorf("start incrementer %d: %w", i+1, err)
		}
	}
	g.Wait()

	if err := g.Err(); err != nil {
		return Result{}, err
	}
	if stopped.Load() {
		return Result{}, fmt.Errorf("counter run stopped early: %w", context.Cause(ctx))
	}

	return Result{
		Workers:    cfg.Workers,
		Increments: cfg.Increments,
		Expected:   cfg.Workers * cfg.Increments,
		Final:      c.Get(),
		Elapsed:    time.Since(start),
	}, nil
}

// ErrInvalidConfig is returned for negative counts, or counts whose product
// does not fit in an int.
var ErrInvalidConfig = errors.New("invalid counter config")
