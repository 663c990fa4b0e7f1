package main

import (
	"fmt"
	"io"
	"log"
)

// quiet drops worker lifecycle lines so only the demo output shows.
var quiet = log.New(io.Discard, "", 0)

func main() {
	section("Two workers — struct bodies")
	demoInterleave()

	section("Two workers — function bodies")
	demoRunnable()

	section("Worker lifecycle — alive, id, join")
	demoLifecycle()

	section("Priority hints")
	demoPriority()

	section("Panic in a worker")
	demoPanic()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
