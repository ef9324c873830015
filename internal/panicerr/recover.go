// Package panicerr converts panics into errors at a session boundary, keeping
// the panic value and a stack trace for later reporting.
package panicerr

import (
	"fmt"
	"runtime/debug"
)

// Error is a panic recovered by Recover.
type Error struct {
	Name  string      // boundary given to Recover
	Value interface{} // value passed to panic
	Stack []byte      // stack of the panicking goroutine
}

func (pe *Error) Error() string {
	if pe.Name == "" {
		return fmt.Sprintf("panic: %v", pe.Value)
	}
	return fmt.Sprintf("%v panic: %v", pe.Name, pe.Value)
}

// Unwrap returns the panic value if it was an error, such as a runtime.Error.
func (pe *Error) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// Recover calls f, returning its error; if f panics, the panic is recovered
// and returned as an *Error naming the given boundary.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &Error{Name: name, Value: v, Stack: debug.Stack()}
		}
	}()
	return f()
}
