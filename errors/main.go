package main

import "fmt"

func main() {
	section("Division by zero — recover, print, continue")
	demoDivideByZero()

	section("Nil reference — runtime panic and a raised error value")
	demoNilReference()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
