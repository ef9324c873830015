// Command minforth evaluates FORTH text: interactively from a terminal, line
// by line from piped input, or as whole script files each in its own session.
package main

import (
	"context"
	"flag"
	"os"

	"golang.org/x/term"

	"github.com/jcorbin/minforth/internal/fileinput"
	"github.com/jcorbin/minforth/internal/flushio"
	"github.com/jcorbin/minforth/internal/logio"
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	var sh shell
	var teePath string
	flag.BoolVar(&sh.trace, "trace", false, "enable trace logging")
	flag.BoolVar(&sh.dump, "dump", false, "dump each session after evaluation")
	flag.BoolVar(&sh.prelude, "prelude", false, "define common words like NIP and MOD")
	flag.IntVar(&sh.stackLimit, "stack-limit", 0, "limit stack depth")
	flag.StringVar(&teePath, "tee", "", "copy output to a file")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	sh.log = &log
	sh.out = flushio.NewWriteFlusher(os.Stdout)

	var tee *flushio.Tee
	if teePath != "" {
		var err error
		if tee, err = flushio.CreateTee(sh.out, teePath); err != nil {
			log.ErrorIf(err)
			return log.ExitCode()
		}
		sh.out = tee
	}

	var err error
	switch {
	case flag.NArg() > 0:
		err = sh.runFiles(ctx, flag.Args())
	case term.IsTerminal(int(os.Stdin.Fd())):
		err = sh.runREPL()
	default:
		err = sh.runInput(fileinput.NamedReader("stdin", os.Stdin))
	}
	log.ErrorIf(err)
	if tee != nil {
		log.ErrorIf(tee.Close())
	} else {
		log.ErrorIf(sh.out.Flush())
	}
	return log.ExitCode()
}
