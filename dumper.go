package forth

import (
	"bytes"
	"fmt"
	"io"
)

// Dump writes a human readable listing of the session to w: the stack, then
// every word in the dictionary with its compiled code.
func (ev *Evaluator) Dump(w io.Writer) error {
	return sessionDumper{ev: ev, out: w}.dump()
}

type sessionDumper struct {
	ev  *Evaluator
	out io.Writer

	nameWidth int
}

func (dump sessionDumper) dump() error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Session Dump\n")
	fmt.Fprintf(&buf, "  stack: %v\n", dump.ev.stack)
	if limit := dump.ev.stackLimit; limit != 0 {
		fmt.Fprintf(&buf, "  limit: %v\n", limit)
	}
	if _, err := buf.WriteTo(dump.out); err != nil {
		return err
	}
	return dump.dumpDict()
}

func (dump *sessionDumper) dumpDict() error {
	defs := dump.ev.dict.defs
	if dump.nameWidth == 0 {
		for _, def := range defs {
			if n := len(def.Name); n > dump.nameWidth {
				dump.nameWidth = n
			}
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Dictionary\n")
	for _, def := range defs {
		fmt.Fprintf(&buf, "  : %-*v", dump.nameWidth, def.Name)
		for _, in := range def.code {
			buf.WriteByte(' ')
			buf.WriteString(in.String())
		}
		buf.WriteString(" ;\n")
	}
	_, err := buf.WriteTo(dump.out)
	return err
}
