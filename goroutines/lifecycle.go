package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/marcodamonte/concurrency-practice/worker"
)

// demoLifecycle walks a worker through new → running → terminated.
func demoLifecycle() {
	demoIsAlive()
	demoCustomWorker()
	demoStartTwice()
	demoJoinTimeout()
	demoNumGoroutine()
}

// demoIsAlive checks liveness right after Start and again after Join.
//
// Right after Start the worker reports alive even if its body has not been
// scheduled yet: the state flips before Start returns. What the body has
// printed by then is up to the scheduler.
func demoIsAlive() {
	body := func(word string) worker.Task {
		return func() {
			for i := 0; i < 3; i++ {
				fmt.Println(" ", word)
				time.Sleep(tick)
			}
		}
	}
	t1 := worker.New(body("Hi"), worker.Config{Name: "t1", Logger: quiet})
	t2 := worker.New(body("Hello"), worker.Config{Name: "t2", Logger: quiet})

	startAll(t1, t2)
	fmt.Println("  is alive t1:", t1.Alive(), "state:", t1.State())
	t1.Join()
	t2.Join()
	fmt.Println("  is alive t1:", t1.Alive(), "state:", t1.State())
	fmt.Println("  bye")
}

// demoCustomWorker names a worker, prints its ID before it starts, and logs
// its lifecycle through an explicit logger.
func demoCustomWorker() {
	logger := log.New(os.Stdout, "  ", log.Lmicroseconds)

	w := worker.New(func() {
		fmt.Println("  task 1 is running")
	}, worker.Config{Name: "TASK1", Logger: logger})

	fmt.Println("  id:", w.ID(), "name:", w.Name(), "state:", w.State())
	startAll(w)
	w.Join()
	fmt.Println("  main is running here")
}

// demoStartTwice shows that a worker is single-use.
func demoStartTwice() {
	w := worker.New(func() {}, worker.Config{Name: "once", Logger: quiet})
	startAll(w)
	w.Join()

	if err := w.Start(); errors.Is(err, worker.ErrAlreadyStarted) {
		fmt.Println("  second start:", err)
	}
}

// demoJoinTimeout bounds a join with a context. The worker keeps running;
// only the wait is abandoned.
func demoJoinTimeout() {
	release := make(chan struct{})
	w := worker.New(func() { <-release }, worker.Config{Name: "slow", Logger: quiet})
	startAll(w)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	fmt.Println("  join with timeout:", w.JoinContext(ctx))
	fmt.Println("  still alive:", w.Alive())

	close(release)
	w.Join()
	fmt.Println("  after release, alive:", w.Alive())
}

// demoNumGoroutine shows that a joined worker leaves no goroutine behind.
func demoNumGoroutine() {
	before := runtime.NumGoroutine()

	var g worker.Group
	for i := 0; i < 5; i++ {
		if _, err := g.Go(func() {}, worker.Config{Logger: quiet}); err != nil {
			fmt.Println("  start:", err)
		}
	}
	g.Wait()

	// Done is closed from inside the worker goroutine, which may take a
	// moment more to be reclaimed.
	time.Sleep(10 * time.Millisecond)
	fmt.Printf("  goroutines before: %d  after join: %d\n", before, runtime.NumGoroutine())
}
