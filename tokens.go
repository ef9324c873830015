package forth

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// Tokens returns the whitespace-delimited tokens of text, in order. The
// sequence is lazy and may be ranged over any number of times; each range
// scans text again from its start.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		tz := tokenize(text)
		for token, ok := tz.next(); ok; token, ok = tz.next() {
			if !yield(token) {
				return
			}
		}
	}
}

// tokenizer scans text for tokens, returning each as a slice of text so that
// tokens are exactly the bytes written, even when those are not valid UTF-8.
type tokenizer struct {
	text string
	pos  int
}

func tokenize(text string) tokenizer {
	return tokenizer{text: text}
}

// next scans past any leading space, then up to the next space or the end of
// input; ok is false only once input is exhausted.
func (tz *tokenizer) next() (token string, ok bool) {
	start := tz.skip(true)
	if start >= len(tz.text) {
		return "", false
	}
	end := tz.skip(false)
	return tz.text[start:end], true
}

// skip advances past runes whose unicode.IsSpace matches space, returning the
// resulting byte offset. An invalid byte decodes as utf8.RuneError, which is
// not space, so it always belongs to a token.
func (tz *tokenizer) skip(space bool) int {
	for tz.pos < len(tz.text) {
		r, size := utf8.DecodeRuneInString(tz.text[tz.pos:])
		if unicode.IsSpace(r) != space {
			break
		}
		tz.pos += size
	}
	return tz.pos
}

// isNumeral reports whether token is an optional sign followed by one or
// more decimal digits.
func isNumeral(token string) bool {
	if len(token) > 0 && (token[0] == '+' || token[0] == '-') {
		token = token[1:]
	}
	if len(token) == 0 {
		return false
	}
	for i := 0; i < len(token); i++ {
		if c := token[i]; c < '0' || c > '9' {
			return false
		}
	}
	return true
}
