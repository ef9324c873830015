package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	forth "github.com/jcorbin/minforth"
	"github.com/jcorbin/minforth/internal/fileinput"
	"github.com/jcorbin/minforth/internal/flushio"
	"github.com/jcorbin/minforth/internal/logio"
	"github.com/jcorbin/minforth/internal/panicerr"
)

// shell sources text for evaluation and displays the results; each source
// gets its own session.
type shell struct {
	log *logio.Logger
	out flushio.WriteFlusher

	trace      bool
	dump       bool
	prelude    bool
	stackLimit int
}

func (sh *shell) newSession(name string) *forth.Evaluator {
	opts := []forth.Option{forth.WithStackLimit(sh.stackLimit)}
	if sh.trace {
		opts = append(opts, forth.WithLogf(sh.log.Leveledf("TRACE "+name)))
	}
	if sh.prelude {
		opts = append(opts, forth.WithPrelude())
	}
	return forth.New(opts...)
}

func (sh *shell) dumpSession(name string, ev *forth.Evaluator) {
	if !sh.dump {
		return
	}
	lw := sh.log.Writer("DUMP " + name)
	sh.log.ErrorIf(ev.Dump(lw))
	lw.Close()
}

// reportError logs err for the named source; a recovered panic is followed
// by its stack trace, one log line per stack line.
func (sh *shell) reportError(name string, err error) {
	sh.log.Errorf("%v: %v", name, err)
	var pe *panicerr.Error
	if errors.As(err, &pe) {
		lw := sh.log.Writer("STACK " + name)
		lw.Write(pe.Stack)
		lw.Close()
	}
}

type fileResult struct {
	stack []int
	err   error
}

// runFiles evaluates each file as a single block of text in its own session.
// Sessions run concurrently; results are printed in argument order. Only
// failing to read a file aborts the run, evaluation errors are logged.
func (sh *shell) runFiles(ctx context.Context, paths []string) error {
	results := make([]fileResult, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			res := &results[i]
			res.err = panicerr.Recover(path, func() error {
				ev := sh.newSession(path)
				defer sh.dumpSession(path, ev)
				err := ev.Eval(string(src))
				res.stack = ev.Stack()
				return err
			})
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if err := results[i].err; err != nil {
			sh.reportError(path, err)
		}
		fmt.Fprintf(sh.out, "%v: %v\n", path, results[i].stack)
	}
	return sh.out.Flush()
}

// runInput evaluates every line read from r in one session, logging any
// error with its location, then prints the final stack.
func (sh *shell) runInput(r io.Reader) error {
	in := fileinput.Input{Queue: []io.Reader{r}}
	var ev *forth.Evaluator
	err := panicerr.Recover("input", func() error {
		for {
			line, err := in.ReadLine()
			if err == io.EOF {
				return nil
			} else if err != nil {
				return err
			}
			if ev == nil {
				ev = sh.newSession(line.Name)
			}
			if err := ev.Eval(line.Text); err != nil {
				sh.log.Errorf("%v: %v", line.Location, err)
			}
		}
	})
	if ev == nil {
		ev = sh.newSession("input")
	}
	sh.dumpSession(in.Last.Name, ev)
	fmt.Fprintf(sh.out, "%v\n", ev.Stack())
	if ferr := sh.out.Flush(); err == nil {
		err = ferr
	}
	return err
}
