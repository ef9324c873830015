package forth

// Option configures an Evaluator created by New.
type Option interface{ apply(ev *Evaluator) }

// Options combines any number of options into one.
func Options(opts ...Option) Option { return options(opts) }

// WithLogf enables trace logging of definitions and executed tokens.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStackLimit bounds the stack depth; a push past limit fails with
// ErrStackOverflow. A limit of 0 means unlimited.
func WithStackLimit(limit int) Option { return stackLimitOption(limit) }

type options []Option
type withLogfn func(mess string, args ...interface{})
type stackLimitOption int

func (opts options) apply(ev *Evaluator) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ev)
		}
	}
}

func (logfn withLogfn) apply(ev *Evaluator) {
	ev.logfn = logfn
}

func (lim stackLimitOption) apply(ev *Evaluator) {
	if lim < 0 {
		lim = 0
	}
	ev.stackLimit = int(lim)
}
