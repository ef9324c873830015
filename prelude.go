package forth

// Prelude is FORTH source defining common words in terms of the built-ins.
// Evaluators created WithPrelude start with these defined; as with any other
// definition, redefining a built-in afterwards does not change them.
//
//	NIP    ( a b -- b )
//	TUCK   ( a b -- b a b )
//	2DUP   ( a b -- a b a b )
//	2DROP  ( a b -- )
//	NEGATE ( a -- -a )
//	1+     ( a -- a+1 )
//	1-     ( a -- a-1 )
//	2*     ( a -- 2a )
//	2/     ( a -- a/2 )
//	SQUARE ( a -- a*a )
//	MOD    ( a b -- a%b )
const Prelude = `
: NIP    SWAP DROP ;
: TUCK   SWAP OVER ;
: 2DUP   OVER OVER ;
: 2DROP  DROP DROP ;
: NEGATE -1 * ;
: 1+     1 + ;
: 1-     1 - ;
: 2*     2 * ;
: 2/     2 / ;
: SQUARE DUP * ;
: MOD    2DUP / * - ;
`

// WithPrelude defines the Prelude words in new evaluators.
func WithPrelude() Option { return preludeOption{} }

type preludeOption struct{}

func (preludeOption) apply(ev *Evaluator) {
	if err := ev.Eval(Prelude); err != nil {
		panic(err)
	}
}
