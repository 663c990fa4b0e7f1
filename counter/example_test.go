package counter_test

import (
	"fmt"
	"io"
	"log"
	"testing"

	"github.com/marcodamonte/concurrency-practice/counter"
)

func ExampleRun() {
	res, err := counter.Run(counter.Config{
		Workers:    2,
		Increments: 10,
		Logger:     log.New(io.Discard, "", 0),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Final count:", res.Final)

	// Output:
	// Final count: 20
}

func ExampleCounter() {
	var c counter.Counter
	c.Increment()
	c.Increment()
	fmt.Println(c.Get())

	// Output:
	// 2
}

// ── Benchmarks ───────────────────────────────────────────────────────────────
//
//	go test -bench=. -benchmem ./counter

func BenchmarkIncrement(b *testing.B) {
	var c counter.Counter
	for i := 0; i < b.N; i++ {
		c.Increment()
	}
}

// BenchmarkIncrementParallel measures the critical section under contention.
func BenchmarkIncrementParallel(b *testing.B) {
	var c counter.Counter
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Increment()
		}
	})
}

func BenchmarkRun(b *testing.B) {
	cfg := counter.Config{Workers: 2, Increments: 1000, Logger: log.New(io.Discard, "", 0)}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := counter.Run(cfg); err != nil {
			b.Fatal(err)
		}
	}
}
