package main

import "fmt"

func main() {
	section("Shared counter — two workers, ten increments each")
	demoSharedCounter()

	section("Counter race — lost updates")
	demoCounterRace()

	section("Counter fix — sync.Mutex")
	demoCounterMutex()

	section("Reading after join")
	demoCounterIdempotentRead()

	section("Boundaries — zero workers, zero increments")
	demoCounterBoundaries()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
