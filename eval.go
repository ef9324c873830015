package forth

import (
	"fmt"
	"strconv"
	"strings"
)

// Evaluator is one interpreter session: an integer stack and a dictionary of
// words, both of which persist across calls to Eval.
//
// An Evaluator is not safe for concurrent use; independent sessions should
// each use their own Evaluator.
type Evaluator struct {
	logging

	// The stack is simply a standard LIFO data structure of host sized ints;
	// it grows and shrinks only at its tail.
	stack      []int
	stackLimit int

	dict *Dictionary
}

// New creates a session with an empty stack and a dictionary holding only the
// built-in words.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{dict: newDictionary()}
	options(opts).apply(ev)
	return ev
}

// Eval evaluates every token of text in order, stopping at the first one
// that fails. Effects of tokens before the failing one are kept; the failing
// token itself leaves the stack and dictionary as they were, unless it was a
// user word, in which case the instructions that ran before the failing one
// keep their effect.
//
// Any returned error is an *EvalError.
func (ev *Evaluator) Eval(text string) error {
	tz := tokenize(text)
	for token, ok := tz.next(); ok; token, ok = tz.next() {
		var err error
		if token == ":" {
			err = ev.define(&tz)
		} else {
			err = ev.exec(token)
		}
		if err != nil {
			ev.logf("!", "%v", err)
			return err
		}
	}
	return nil
}

// Stack returns a copy of the stack, bottom first.
func (ev *Evaluator) Stack() []int {
	stack := make([]int, len(ev.stack))
	copy(stack, ev.stack)
	return stack
}

// Words returns the name of every word in the dictionary, in the order they
// were first defined, starting with the built-ins.
func (ev *Evaluator) Words() []string { return ev.dict.names() }

// Complete returns the words that start with prefix, matched the same way
// that words are looked up.
func (ev *Evaluator) Complete(prefix string) []string { return ev.dict.complete(prefix) }

// Lookup returns the current definition of the named word.
func (ev *Evaluator) Lookup(name string) (Definition, bool) { return ev.dict.lookup(name) }

func (ev *Evaluator) exec(token string) error {
	code, err := ev.resolve(token)
	if err != nil {
		return &EvalError{Token: token, Err: err}
	}
	ev.logf(">", "exec %v %v -- s:%v", token, code, ev.stack)
	for _, in := range code {
		if err := ev.step(in); err != nil {
			return &EvalError{Token: token, Err: err}
		}
	}
	return nil
}

// resolve returns the code that token runs: a single pushint for a numeral,
// or the current definition of a word.
func (ev *Evaluator) resolve(token string) ([]instr, error) {
	if isNumeral(token) {
		val, err := strconv.ParseInt(token, 10, strconv.IntSize)
		if err != nil {
			return nil, ErrUnknownWord
		}
		return []instr{{code: opPushint, val: int(val)}}, nil
	}
	if def, defined := ev.dict.lookup(token); defined {
		return def.code, nil
	}
	return nil, ErrUnknownWord
}

// Symbol   Name     Function
//
//	:        define   read the next token as a name, then every token up to ;
//	                  as its body, compiling the body against the dictionary
//	                  as it stands now.
func (ev *Evaluator) define(tz *tokenizer) error {
	name, ok := tz.next()
	if !ok {
		return &EvalError{Token: ":", Err: ErrUnterminatedDefinition}
	}
	if name == ":" || name == ";" || isNumeral(name) {
		return &EvalError{Token: name, Err: ErrInvalidWord}
	}

	var body []string
	for {
		token, ok := tz.next()
		if !ok {
			return &EvalError{Token: name, Err: ErrUnterminatedDefinition}
		}
		if token == ";" {
			break
		}
		body = append(body, token)
	}

	var code []instr
	for _, token := range body {
		sub, err := ev.resolve(token)
		if err != nil {
			return &EvalError{Token: token, Err: err}
		}
		code = append(code, sub...)
	}

	ev.dict.define(name, code)
	ev.logf(":", "define %v -> %v", name, code)
	return nil
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
