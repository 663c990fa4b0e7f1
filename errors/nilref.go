package main

import (
	"errors"
	"fmt"
	"runtime"
)

// NilReferenceError is raised deliberately to show a custom error value
// travelling through panic and recover.
type NilReferenceError struct {
	Message string
}

func (e *NilReferenceError) Error() string { return e.Message }

type customer struct {
	id   int
	name string
}

func (c *customer) fields() string {
	return fmt.Sprintf("%d%s", c.id, c.name) // dereferences c
}

// demoNilReference shows both flavours: the runtime's own nil dereference
// and a deliberately raised error value.
func demoNilReference() {
	var c *customer
	if err := catch(func() { _ = c.fields() }); err != nil {
		var rtErr runtime.Error
		fmt.Println("  runtime error:", errors.As(err, &rtErr))
		fmt.Println(" ", err)
	}

	err := catch(func() { panic(&NilReferenceError{Message: "demo"}) })
	var nre *NilReferenceError
	if errors.As(err, &nre) {
		fmt.Println(" ", nre.Message)
	}

	fmt.Println("  still running")
}

// catch runs fn and turns a panic into an error. Error values are wrapped so
// errors.As can find them; anything else is formatted.
func catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = fmt.Errorf("recovered: %w", e)
			return
		}
		err = fmt.Errorf("recovered: %v", r)
	}()
	fn()
	return nil
}
