package fileinput_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/minforth/internal/fileinput"
)

func Test_Input(t *testing.T) {
	closed := &closeRecorder{Reader: strings.NewReader("4 5\n")}
	in := fileinput.Input{Queue: []io.Reader{
		fileinput.NamedReader("a.fs", strings.NewReader("1 2\r\n: SQ DUP * ;\n\n3")),
		fileinput.NamedReader("empty.fs", strings.NewReader("")),
		closed,
	}}

	var got []string
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, line.String())
	}
	assert.Equal(t, []string{
		`a.fs:1 "1 2"`,
		`a.fs:2 ": SQ DUP * ;"`,
		`a.fs:3 ""`,
		`a.fs:4 "3"`,
		`<unnamed *fileinput_test.closeRecorder>:1 "4 5"`,
	}, got)
	assert.True(t, closed.closed, "expected exhausted stream to be closed")
	assert.Equal(t, "<unnamed *fileinput_test.closeRecorder>:1", in.Last.Location.String())

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected EOF to persist")
}

func Test_Input_error(t *testing.T) {
	in := fileinput.Input{Queue: []io.Reader{
		fileinput.NamedReader("bad", io.MultiReader(
			strings.NewReader("1\n"),
			errReader{errors.New("disk on fire")},
		)),
	}}
	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "1", line.Text)
	_, err = in.ReadLine()
	assert.EqualError(t, err, "bad:1: disk on fire")
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (cr *closeRecorder) Close() error {
	cr.closed = true
	return nil
}

type errReader struct{ err error }

func (er errReader) Read(p []byte) (int, error) { return 0, er.err }
