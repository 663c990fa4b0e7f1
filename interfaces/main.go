package main

import "fmt"

// ── Overriding: one method, a more specific answer per variant ───────────────

// RateProvider is implemented by every bank.
type RateProvider interface {
	Rate() int
}

// Bank is the base variant with the default rate.
type Bank struct{}

func (Bank) Rate() int { return 0 }

// ICICI and AXIS embed Bank and shadow Rate with their own.
type ICICI struct{ Bank }

func (ICICI) Rate() int { return 8 }

type AXIS struct{ Bank }

func (AXIS) Rate() int { return 9 }

// ── Multilevel: each level embeds the one above ──────────────────────────────

type Displayer interface {
	Display() string
}

type Parent struct{}

func (Parent) Display() string { return "A" }

type Child struct{ Parent }

func (Child) Display() string { return "B" }

type LowerChild struct{ Child }

func (LowerChild) Display() string { return "C" }

// ── Hierarchical: siblings share a base field, each shows its own ────────────

type Shower interface {
	Show() int
}

type Base struct{ X int }

func (b Base) Show() int { return b.X }

type SiblingB struct {
	Base
	B int
}

func (s SiblingB) Show() int { return s.B }

type SiblingC struct {
	Base
	C int
}

func (s SiblingC) Show() int { return s.C }

// ── Abstract base: the interface is the contract, embedding shares code ──────

// Mobile is the full contract. No single type below implements it until the
// last one fills in BioLock.
type Mobile interface {
	Camera() string
	Call() string
	Music() string
	Flash() string
	BioLock() string
}

// camera is the shared concrete part of every mobile.
type camera struct{}

func (camera) Camera() string { return "Camera.." }

// phone adds calling, music and flash but not BioLock, so it is not a Mobile.
type phone struct{ camera }

func (phone) Call() string  { return "Calling.." }
func (phone) Music() string { return "Music.." }
func (phone) Flash() string { return "Flash.." }

// Samsung completes the contract.
type Samsung struct{ phone }

func (Samsung) BioLock() string { return "Lock.." }

// ── Field promotion ──────────────────────────────────────────────────────────

type Employee struct {
	Salary float32
}

type Programmer struct {
	Employee
	Bonus int
}

func main() {
	fmt.Println("=== Overriding ===")
	for _, b := range []RateProvider{Bank{}, ICICI{}, AXIS{}} {
		fmt.Printf("  %T rate: %d\n", b, b.Rate())
	}
	// The embedded base is still reachable explicitly.
	fmt.Printf("  ICICI's embedded Bank rate: %d\n", ICICI{}.Bank.Rate())

	fmt.Println("\n=== Multilevel ===")
	for _, d := range []Displayer{Parent{}, Child{}, LowerChild{}} {
		fmt.Printf("  %T → %s\n", d, d.Display())
	}

	fmt.Println("\n=== Hierarchical ===")
	b := SiblingB{Base: Base{X: 10}, B: 20}
	c := SiblingC{Base: Base{X: 10}, C: 30}
	for _, s := range []Shower{b.Base, b, c} {
		fmt.Printf("  %T → %d\n", s, s.Show())
	}

	fmt.Println("\n=== Abstract base ===")
	var m Mobile = Samsung{}
	fmt.Println(" ", m.Camera(), m.Flash(), m.BioLock())
	var x any = phone{}
	if _, ok := x.(Mobile); !ok {
		fmt.Println("  phone is not a Mobile: BioLock is missing")
	}

	fmt.Println("\n=== Field promotion ===")
	p := Programmer{Employee: Employee{Salary: 4000}, Bonus: 10000}
	fmt.Printf("  salary = %.1f\n", p.Salary)
	fmt.Printf("  bonus  = %d\n", p.Bonus)
}
