package logio

import (
	"bytes"
	"sync"
)

// Writer is an io.WriteCloser that logs every line written to it as its own
// message at a fixed level; it is safe to write from multiple goroutines.
type Writer struct {
	log   *Logger
	level string

	mu      sync.Mutex
	partial []byte
}

// Writer returns a Writer that logs lines with the given level.
func (log *Logger) Writer(level string) *Writer {
	return &Writer{log: log, level: level}
}

// Write logs each complete line of p, holding any trailing partial line
// until a later Write completes it or Close.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n = len(p)
	for {
		line, rest, complete := bytes.Cut(p, []byte{'\n'})
		if !complete {
			lw.partial = append(lw.partial, p...)
			return n, nil
		}
		if len(lw.partial) > 0 {
			line = append(lw.partial, line...)
			lw.partial = lw.partial[:0]
		}
		lw.log.Printf(lw.level, "%s", line)
		p = rest
	}
}

// Close logs any final partial line.
func (lw *Writer) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.log.Printf(lw.level, "%s", lw.partial)
		lw.partial = nil
	}
	return nil
}
