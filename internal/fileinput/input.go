// Package fileinput reads lines from a queue of input streams, tracking the
// name and line number of each.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

// Line is one line of input text, without its line ending, along with where
// it came from.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Streams are closed, if they implement io.Closer, once
// exhausted.
type Input struct {
	Queue []io.Reader

	br   *bufio.Reader
	cl   io.Closer
	Last Line
	Scan Location
}

// ReadLine returns the next line from the current stream, moving on through
// Queue as streams run out; it returns io.EOF once all are exhausted.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return Line{}, io.EOF
		}

		s, err := in.br.ReadString('\n')
		if len(s) > 0 {
			in.Scan.Line++
			in.Last = Line{Location: in.Scan, Text: strings.TrimRight(s, "\r\n")}
			if err == io.EOF {
				in.closeIn()
			}
			return in.Last, nil
		}
		if err == io.EOF {
			in.closeIn()
			continue
		}
		if err != nil {
			return Line{}, fmt.Errorf("%v: %w", in.Scan, err)
		}
	}
}

func (in *Input) closeIn() {
	if in.cl != nil {
		in.cl.Close()
		in.cl = nil
	}
	in.br = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.br = bufio.NewReader(r)
		in.cl, _ = r.(io.Closer)
		in.Scan = Location{Name: nameOf(r)}
	}
	return in.br != nil
}

// NamedReader attaches a name to a reader, for use in Locations.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
