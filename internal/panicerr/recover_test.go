package panicerr_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/minforth/internal/panicerr"
)

func Test_Recover(t *testing.T) {
	for _, tc := range []struct {
		name    string
		err     string
		wraps   string
		fun     func() error
		isPanic bool
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name: "normal err",
			err:  "bang",
			fun:  func() error { return errors.New("bang") },
		},
		{
			name:    "",
			err:     "panic: shrug",
			wraps:   "shrug",
			isPanic: true,
			fun:     func() error { panic(errors.New("shrug")) },
		},
		{
			name:    "hello.fs",
			err:     "hello.fs panic: hello",
			isPanic: true,
			fun:     func() error { panic("hello") },
		},
		{
			name:    "index.fs",
			err:     "index.fs panic: runtime error: index out of range [1] with length 0",
			wraps:   "runtime error: index out of range [1] with length 0",
			isPanic: true,
			fun:     func() error { _ = ([]int)(nil)[1]; return nil },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.err)

			var pe *panicerr.Error
			if !tc.isPanic {
				assert.False(t, errors.As(err, &pe), "expected a plain error")
				return
			}
			require.True(t, errors.As(err, &pe), "expected a recovered panic")
			assert.Equal(t, tc.name, pe.Name)
			assert.Contains(t, string(pe.Stack), "goroutine ", "expected a stack trace")
			if tc.wraps != "" {
				assert.EqualError(t, errors.Unwrap(err), tc.wraps, "expected panic(error) value")
			} else {
				assert.NoError(t, errors.Unwrap(err))
			}
		})
	}
}

func Test_Recover_runtimeError(t *testing.T) {
	err := panicerr.Recover("div.fs", func() error {
		zero := 0
		_ = 1 / zero
		return nil
	})
	var re runtime.Error
	assert.True(t, errors.As(err, &re), "expected the runtime error to be reachable")
}
