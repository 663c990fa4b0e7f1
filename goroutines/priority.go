package main

import (
	"fmt"

	"github.com/marcodamonte/concurrency-practice/worker"
)

// demoPriority starts three workers with min, norm and max priority hints.
//
// The Go scheduler has no goroutine priorities. A min-priority worker yields
// once before running, which makes it likely, not certain, to start last.
// Run it a few times: the order of the lines changes.
func demoPriority() {
	run := func(label string) worker.Task {
		return func() {
			fmt.Printf("  started %s\n", label)
			for i := 0; i < 3; i++ {
				fmt.Printf("  from %s: %d\n", label, i)
			}
			fmt.Printf("  ended %s\n", label)
		}
	}

	a := worker.New(run("A"), worker.Config{Name: "A", Priority: worker.MinPriority, Logger: quiet})
	b := worker.New(run("B"), worker.Config{Name: "B", Priority: worker.NormPriority, Logger: quiet})
	c := worker.New(run("C"), worker.Config{Name: "C", Priority: worker.MaxPriority, Logger: quiet})

	for _, w := range []*worker.Worker{a, b, c} {
		fmt.Printf("  start %s (priority %s)\n", w.Name(), w.Priority())
		startAll(w)
	}
	fmt.Println("  end of main")

	a.Join()
	b.Join()
	c.Join()

	bad := worker.New(run("D"), worker.Config{Name: "D", Priority: 11, Logger: quiet})
	fmt.Println("  out of range:", bad.Start())
}
