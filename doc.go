/*
Package forth implements a small interpreter for a subset of FORTH.

FORTH is a stack based language: a program is a sequence of whitespace
separated words, each evaluated left to right against a single stack of
integers.  Numbers push themselves.  Every other word is looked up in the
dictionary, where built-in primitives are indistinguishable from user-defined
words.

The built-in words are:

	Symbol   Function
	  +      pop b then a, push a + b
	  -      pop b then a, push a - b
	  *      pop b then a, push a * b
	  /      pop b then a, push a / b, truncated toward zero
	 DUP     copy the top of the stack
	 DROP    throw away the top of the stack
	 SWAP    exchange the top two elements
	 OVER    copy the second element over the top

New words are defined with a colon definition:

	: SQUARE DUP * ;

Word names are case insensitive, so square, Square, and SQUARE all name the
word just defined.  Any word may be redefined, built-ins included.

Definitions are compiled when they are made, not when they are run: the body
of SQUARE is stored as the code that DUP and * had at the time it was defined.
Redefining DUP afterwards changes what DUP does, but not what SQUARE does:

	: DOUBLE 2 * ;
	: QUADRUPLE DOUBLE DOUBLE ;
	: DOUBLE 3 * ;
	5 QUADRUPLE   ( leaves 20, not 45 )

There is no control flow, so evaluation always terminates.  Evaluation stops
at the first error; see EvalError for details.
*/
package forth
