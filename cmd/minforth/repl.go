package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/peterh/liner"

	forth "github.com/jcorbin/minforth"
)

const replPrompt = "> "

func (sh *shell) runREPL() error {
	ln := liner.NewLiner()
	defer ln.Close()

	ev := sh.newSession("repl")
	defer sh.dumpSession("repl", ev)

	ln.SetCtrlCAborts(true)
	ln.SetTabCompletionStyle(liner.TabPrints)
	ln.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return completeWord(ev.Complete, line, pos)
	})

	for {
		text, err := ln.Prompt(replPrompt)
		if err == liner.ErrPromptAborted {
			continue
		} else if err == io.EOF {
			fmt.Fprintln(sh.out)
			return sh.out.Flush()
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(text) != "" {
			ln.AppendHistory(text)
		}
		fmt.Fprintln(sh.out, status(ev, ev.Eval(text)))
		if err := sh.out.Flush(); err != nil {
			return err
		}
	}
}

// status formats the outcome of one evaluation for display: the stack, then
// "ok" or the error.
func status(ev *forth.Evaluator, err error) string {
	if err != nil {
		return fmt.Sprintf("%v error: %v", ev.Stack(), err)
	}
	return fmt.Sprintf("%v ok", ev.Stack())
}

// completeWord completes the word ending at rune offset pos in line through
// complete, which returns the dictionary words starting with a prefix.
func completeWord(complete func(prefix string) []string, line string, pos int) (head string, completions []string, tail string) {
	runes := []rune(line)
	if pos < 0 {
		pos = 0
	} else if pos > len(runes) {
		pos = len(runes)
	}
	start := pos
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	head, tail = string(runes[:start]), string(runes[pos:])
	return head, complete(string(runes[start:pos])), tail
}
