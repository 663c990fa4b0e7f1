package main

import (
	"fmt"
	"time"

	"github.com/marcodamonte/concurrency-practice/worker"
)

// tick is the pause between prints. Short enough for a demo, long enough that
// the two workers visibly interleave.
const tick = 50 * time.Millisecond

// greeter is a struct-based body: the type carries its own Run method, the
// same shape as a class that extends a thread type.
type greeter struct {
	word  string
	times int
}

func (g greeter) Run() {
	for i := 0; i < g.times; i++ {
		fmt.Println(" ", g.word)
		time.Sleep(tick)
	}
}

// demoInterleave starts two struct-based workers. Their output interleaves
// in no fixed order; main joins both so the program does not exit early.
func demoInterleave() {
	hi := worker.New(worker.FromRunner(greeter{word: "Hi", times: 5}), worker.Config{Name: "hi", Logger: quiet})
	hello := worker.New(worker.FromRunner(greeter{word: "Hello", times: 5}), worker.Config{Name: "hello", Logger: quiet})

	startAll(hi, hello)
	hi.Join()
	hello.Join()
}

// demoRunnable passes plain functions instead of types. The worker does not
// care where the body comes from.
func demoRunnable() {
	say := func(word string) worker.Task {
		return func() {
			for i := 0; i < 5; i++ {
				fmt.Println(" ", word)
				time.Sleep(tick)
			}
		}
	}

	var g worker.Group
	for _, word := range []string{"Hi", "Hello"} {
		if _, err := g.Go(say(word), worker.Config{Name: word, Logger: quiet}); err != nil {
			fmt.Println("  start:", err)
		}
	}
	g.Wait()
}

func startAll(ws ...*worker.Worker) {
	for _, w := range ws {
		if err := w.Start(); err != nil {
			fmt.Println("  start:", err)
		}
	}
}
