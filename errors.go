package forth

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWord is returned for a token that is neither a numeral nor a
	// word in the dictionary.
	ErrUnknownWord = errors.New("unknown word")

	// ErrInvalidWord is returned when defining a word named by a numeral, or
	// by one of the definition markers.
	ErrInvalidWord = errors.New("invalid word")

	// ErrUnterminatedDefinition is returned when input ends inside of a
	// definition; nothing is defined.
	ErrUnterminatedDefinition = errors.New("unterminated definition")

	ErrStackUnderflow = errors.New("stack underflow")
	ErrDivisionByZero = errors.New("division by zero")

	// ErrStackOverflow is only returned by evaluators created WithStackLimit.
	ErrStackOverflow = errors.New("stack overflow")
)

// EvalError is returned by Evaluator.Eval, recording the token that failed.
// Use errors.Is to match the underlying kind.
type EvalError struct {
	Token string
	Err   error
}

func (err *EvalError) Error() string {
	if err.Token == "" {
		return err.Err.Error()
	}
	return fmt.Sprintf("%v: %v", err.Err, err.Token)
}

func (err *EvalError) Unwrap() error { return err.Err }

type codeError opcode

func (code codeError) Error() string { return fmt.Sprintf("invalid code %v", uint(code)) }
