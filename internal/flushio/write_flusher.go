// Package flushio provides flushable writers for buffered command output.
package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// WriteFlusher is an io.Writer whose output may be held until Flush.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher returns w as a WriteFlusher: writers with their own Flush
// are used as is, in-memory buffers and io.Discard get a Flush that does
// nothing, and anything else (a terminal, pipe, or file) is buffered.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch w := w.(type) {
	case WriteFlusher:
		return w
	case *bytes.Buffer, *strings.Builder:
		return unbuffered{w}
	}
	if w == io.Discard {
		return unbuffered{w}
	}
	return bufio.NewWriter(w)
}

type unbuffered struct{ io.Writer }

func (unbuffered) Flush() error { return nil }
