package main

import (
	"errors"
	"fmt"

	"github.com/marcodamonte/concurrency-practice/worker"
)

// demoPanic shows what happens when a worker's body panics.
//
// A plain goroutine that panics takes the whole program down, and recover()
// in main cannot stop it. A Worker recovers inside its own goroutine, so
// only that worker terminates and the panic comes back as an error on Err.
func demoPanic() {
	var g worker.Group

	for i := 1; i <= 3; i++ {
		id := i
		_, err := g.Go(func() {
			if id == 2 {
				panic(fmt.Sprintf("worker%d exploded", id))
			}
			fmt.Printf("  worker%d finished ok\n", id)
		}, worker.Config{Name: fmt.Sprintf("worker%d", id), Logger: quiet})
		if err != nil {
			fmt.Println("  start:", err)
		}
	}

	g.Wait()
	if err := g.Err(); errors.Is(err, worker.ErrPanicked) {
		fmt.Println("  caught:", err)
	}
	for _, w := range g.Workers() {
		fmt.Printf("  %s alive=%v\n", w.Name(), w.Alive())
	}
}
