package flushio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Tee is a WriteFlusher that copies everything written to its output into a
// file as well.
type Tee struct {
	out  WriteFlusher
	file *os.File
	copy *bufio.Writer
}

// CreateTee creates (or truncates) the file at path, returning a Tee that
// writes into both out and that file.
func CreateTee(out WriteFlusher, path string) (*Tee, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Tee{out: out, file: f, copy: bufio.NewWriter(f)}, nil
}

// Write writes p to the output, then to the file; a failed or short write to
// the output is not copied.
func (t *Tee) Write(p []byte) (n int, err error) {
	n, err = t.out.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, err
	}
	if _, err := t.copy.Write(p); err != nil {
		return n, fmt.Errorf("tee %v: %w", t.file.Name(), err)
	}
	return n, nil
}

// Flush flushes both the output and the file copy.
func (t *Tee) Flush() error {
	return errors.Join(t.out.Flush(), t.copy.Flush())
}

// Close flushes, then closes the file; the output is left open.
func (t *Tee) Close() error {
	return errors.Join(t.Flush(), t.file.Close())
}
