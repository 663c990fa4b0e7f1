package main

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrDivideByZero is what divide returns instead of panicking.
var ErrDivideByZero = errors.New("divide by zero")

// demoDivideByZero catches the runtime panic from an integer division by
// zero, prints it and carries on. The deferred print runs on both paths,
// like a finally block.
func demoDivideByZero() {
	x, y := 20, 0

	z, err := safeDiv(x, y)
	if err != nil {
		fmt.Println(" ", err)
	} else {
		fmt.Println("  z =", z)
	}

	var rtErr runtime.Error
	if errors.As(err, &rtErr) {
		fmt.Println("  it is a runtime.Error:", rtErr.Error())
	}

	// The error-returning version: no panic, just a sentinel.
	if _, err := divide(x, y); errors.Is(err, ErrDivideByZero) {
		fmt.Println("  divide:", err)
	}
	if v, err := divide(x, 4); err == nil {
		fmt.Printf("  %d / 4 = %d\n", x, v)
	}
}

// safeDiv recovers the panic of a / b and returns it as an error wrapping the
// runtime.Error.
func safeDiv(a, b int) (result int, err error) {
	defer fmt.Println("  I always get executed!")
	defer func() {
		if r := recover(); r != nil {
			if rtErr, ok := r.(runtime.Error); ok {
				err = fmt.Errorf("safeDiv %d/%d: %w", a, b, rtErr)
				return
			}
			err = fmt.Errorf("safeDiv %d/%d: panic: %v", a, b, r)
		}
	}()
	result = a / b // panics if b == 0
	return result, nil
}

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, fmt.Errorf("divide %d/%d: %w", a, b, ErrDivideByZero)
	}
	return a / b, nil
}
