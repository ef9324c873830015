package forth

import "strconv"

//// Primitives

// Every word, built-in or user defined, runs as a flat sequence of
// instructions. An instruction is an opcode and, for pushint, an operand.
// Each primitive checks the stack depth it needs before it touches the stack,
// so a failing primitive never leaves the stack half consumed.

//// Integer Operations

// Name   Symbol   Function
//
//	add    +        pop top 2 elements of stack, add, push
func (ev *Evaluator) add() error {
	b, a, err := ev.pop2()
	if err == nil {
		err = ev.push(a + b)
	}
	return err
}

// Name   Symbol   Function
//
//	sub    -        pop top 2 elements of stack, subtract, push
func (ev *Evaluator) sub() error {
	b, a, err := ev.pop2()
	if err == nil {
		err = ev.push(a - b)
	}
	return err
}

// Name   Symbol   Function
//
//	mul    *        pop top 2 elements of stack, multiply, push
func (ev *Evaluator) mul() error {
	b, a, err := ev.pop2()
	if err == nil {
		err = ev.push(a * b)
	}
	return err
}

// Name   Symbol   Function
//
//	div    /        pop top 2 elements of stack, divide, push
//
// The quotient truncates toward zero. A zero divisor fails before anything is
// popped.
func (ev *Evaluator) div() error {
	if err := ev.need(2); err != nil {
		return err
	}
	if ev.stack[len(ev.stack)-1] == 0 {
		return ErrDivisionByZero
	}
	b, a, _ := ev.pop2()
	return ev.push(a / b)
}

//// Stack Operations

// Name   Function
//
//	dup    copy the top of the stack
func (ev *Evaluator) dup() error {
	if err := ev.need(1); err != nil {
		return err
	}
	return ev.push(ev.stack[len(ev.stack)-1])
}

// Name   Function
//
//	drop   throw away the top of the stack
func (ev *Evaluator) drop() error {
	if err := ev.need(1); err != nil {
		return err
	}
	ev.stack = ev.stack[:len(ev.stack)-1]
	return nil
}

// Name   Function
//
//	swap   exchange the top two elements of the stack
func (ev *Evaluator) swap() error {
	if err := ev.need(2); err != nil {
		return err
	}
	i := len(ev.stack) - 1
	ev.stack[i], ev.stack[i-1] = ev.stack[i-1], ev.stack[i]
	return nil
}

// Name   Function
//
//	over   copy the second element of the stack up over the top
func (ev *Evaluator) over() error {
	if err := ev.need(2); err != nil {
		return err
	}
	return ev.push(ev.stack[len(ev.stack)-2])
}

//// Internal primitives have no names and no dictionary entries.

// pushint pushes the instruction's operand; it is what numeric literals
// compile to.
func (ev *Evaluator) pushint(val int) error { return ev.push(val) }

const (
	opPushint opcode = iota // <INTERNAL>  push the operand

	opAdd  // +      binary integer operation on the stack
	opSub  // -      binary integer operation on the stack
	opMul  // *      binary integer operation on the stack
	opDiv  // /      binary integer operation on the stack
	opDup  // DUP    copy the top of the stack
	opDrop // DROP   throw away the top of the stack
	opSwap // SWAP   exchange the top two elements
	opOver // OVER   copy the second element over the top

	opMax
	opFirstBuiltin = opAdd
)

type opcode uint8

// instr is a single compiled instruction; val is only meaningful for pushint.
type instr struct {
	code opcode
	val  int
}

func (in instr) String() string {
	if in.code == opPushint {
		return "pushint(" + strconv.Itoa(in.val) + ")"
	}
	return in.code.String()
}

func (code opcode) String() string {
	if code < opMax {
		return opNames[code]
	}
	return "op(" + strconv.Itoa(int(code)) + ")"
}

var opTable = [opMax]func(ev *Evaluator) error{
	opAdd:  (*Evaluator).add,
	opSub:  (*Evaluator).sub,
	opMul:  (*Evaluator).mul,
	opDiv:  (*Evaluator).div,
	opDup:  (*Evaluator).dup,
	opDrop: (*Evaluator).drop,
	opSwap: (*Evaluator).swap,
	opOver: (*Evaluator).over,
}

var opNames = [opMax]string{
	opPushint: "pushint",
	opAdd:     "add",
	opSub:     "sub",
	opMul:     "mul",
	opDiv:     "div",
	opDup:     "dup",
	opDrop:    "drop",
	opSwap:    "swap",
	opOver:    "over",
}

// builtinWords names the symbols that a fresh dictionary binds to each
// primitive.
var builtinWords = [opMax]string{
	opAdd:  "+",
	opSub:  "-",
	opMul:  "*",
	opDiv:  "/",
	opDup:  "DUP",
	opDrop: "DROP",
	opSwap: "SWAP",
	opOver: "OVER",
}

func (ev *Evaluator) step(in instr) error {
	if in.code == opPushint {
		return ev.pushint(in.val)
	}
	if in.code < opMax {
		if op := opTable[in.code]; op != nil {
			return op(ev)
		}
	}
	return codeError(in.code)
}

func (ev *Evaluator) need(n int) error {
	if len(ev.stack) < n {
		return ErrStackUnderflow
	}
	return nil
}

func (ev *Evaluator) push(val int) error {
	if limit := ev.stackLimit; limit != 0 && len(ev.stack) >= limit {
		return ErrStackOverflow
	}
	ev.stack = append(ev.stack, val)
	return nil
}

// pop2 pops the top (b) and second (a) values, or nothing at all.
func (ev *Evaluator) pop2() (b, a int, err error) {
	if err := ev.need(2); err != nil {
		return 0, 0, err
	}
	i := len(ev.stack) - 2
	a, b = ev.stack[i], ev.stack[i+1]
	ev.stack = ev.stack[:i]
	return b, a, nil
}
