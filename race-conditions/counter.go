package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/marcodamonte/concurrency-practice/counter"
)

const (
	workers    = 100
	increments = 10_000
	expected   = workers * increments // 1_000_000
)

// quiet keeps worker lifecycle lines out of the runs with many workers.
var quiet = log.New(io.Discard, "", 0)

// demoSharedCounter is the classic two-thread example: two workers share one
// counter, each increments it ten times, and main reads it after joining both.
func demoSharedCounter() {
	logger := log.New(os.Stdout, "  ", log.Lmicroseconds)

	res, err := counter.Run(counter.Config{Workers: 2, Increments: 10, Logger: logger})
	if err != nil {
		fmt.Println("  error:", err)
		return
	}
	fmt.Println("  Final count:", res.Final) // always 20
}

// demoCounterRace shows the most common race condition: workers performing
// a read-modify-write on the same variable without synchronization.
//
// value++ is NOT atomic. It compiles to three instructions:
//
//	LOAD  value → reg
//	ADD   reg, 1
//	STORE reg → value
//
// When two workers interleave between LOAD and STORE they both read the
// same value, both add 1, and both write back, and one increment is lost.
//
// Run with -race to have the race detector flag every unsynchronized access:
//
//	go run -race .
func demoCounterRace() {
	res, err := counter.RunWith(&counter.UnsafeCounter{}, counter.Config{
		Workers:    workers,
		Increments: increments,
		Logger:     quiet,
	})
	if err != nil {
		fmt.Println("  error:", err)
		return
	}
	fmt.Printf("  expected: %d  got: %d  lost updates: %d\n", res.Expected, res.Final, res.Lost())
}

// demoCounterMutex runs the same load against the mutex-guarded counter.
// Only one worker can be inside Increment's critical section at a time.
func demoCounterMutex() {
	res, err := counter.Run(counter.Config{Workers: workers, Increments: increments, Logger: quiet})
	if err != nil {
		fmt.Println("  error:", err)
		return
	}
	fmt.Printf("  expected: %d  got: %d  elapsed: %s  ✓\n", expected, res.Final, res.Elapsed)
}

// demoCounterIdempotentRead reads the counter several times after the join.
// With no mutators left, every read returns the same value.
func demoCounterIdempotentRead() {
	c := counter.New()
	if _, err := counter.RunWith(c, counter.Config{Workers: 2, Increments: 10, Logger: quiet}); err != nil {
		fmt.Println("  error:", err)
		return
	}
	fmt.Printf("  reads after join: %d %d %d\n", c.Get(), c.Get(), c.Get())
}

// demoCounterBoundaries covers the degenerate runs: nobody increments.
func demoCounterBoundaries() {
	for _, cfg := range []counter.Config{
		{Workers: 0, Increments: 10},
		{Workers: 2, Increments: 0},
	} {
		cfg.Logger = quiet
		res, err := counter.Run(cfg)
		if err != nil {
			fmt.Println("  error:", err)
			continue
		}
		fmt.Printf("  workers=%d increments=%d → final=%d\n", cfg.Workers, cfg.Increments, res.Final)
	}

	_, err := counter.Run(counter.Config{Workers: -1, Logger: quiet})
	fmt.Println("  workers=-1 →", err)
}
