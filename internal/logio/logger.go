// Package logio provides line oriented logging for the minforth command.
package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Exit codes reported by Logger.ExitCode.
const (
	ExitOK    = 0
	ExitError = 1 // an error was logged through Errorf
	ExitIO    = 2 // an io error was reported through ErrorIf, or logging failed
)

// Logger implements a leveled logging facility around an output stream,
// tracking whether any error was logged so that the command can exit
// non-zero.
type Logger struct {
	sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	exitCode int
}

// SetOutput sets the logger's output stream.
func (log *Logger) SetOutput(out io.Writer) {
	log.Lock()
	defer log.Unlock()
	log.output = out
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf reports any non-nil error as an io failure: it is logged like
// Errorf, but ExitCode() will return ExitIO.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Lock()
		defer log.Unlock()
		log.reportError(err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if log.exitCode < ExitError {
		log.exitCode = ExitError
	}
	if err := log.printf("ERROR", mess, args...); err != nil {
		log.exitCode = ExitIO
	}
}

// Printf prints a line to the output stream like "level: message...\n".
// An io error is retained as ExitIO for ExitCode().
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = ExitIO
	}
}

func (log *Logger) reportError(err error) {
	log.printf("ERROR", "%v", err)
	log.exitCode = ExitIO
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		return nil
	}
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	log.buf.Reset()
	return err
}
