package forth

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tokens(t *testing.T) {
	for _, tc := range []struct {
		name   string
		text   string
		tokens []string
	}{
		{name: "empty", text: "", tokens: nil},
		{name: "blank", text: " \t\r\n\v\f ", tokens: nil},
		{name: "one", text: "DUP", tokens: []string{"DUP"}},
		{name: "padded", text: "  1  2 ", tokens: []string{"1", "2"}},
		{name: "definition", text: ": SQ DUP * ;", tokens: []string{":", "SQ", "DUP", "*", ";"}},
		{name: "lines", text: "1\n2\r\n\t3", tokens: []string{"1", "2", "3"}},
		{name: "unicode space", text: "1\u00a02\u30003", tokens: []string{"1", "2", "3"}},
		{name: "unicode word", text: "ÉCHO ß", tokens: []string{"ÉCHO", "ß"}},
		{name: "invalid utf8", text: "\xff \xfe\xfd a\xffb", tokens: []string{"\xff", "\xfe\xfd", "a\xffb"}},
		{name: "invalid utf8 around space", text: "\xff\u00a0\xfe", tokens: []string{"\xff", "\xfe"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			seq := Tokens(tc.text)
			assert.Equal(t, tc.tokens, slices.Collect(seq), "expected tokens")
			assert.Equal(t, tc.tokens, slices.Collect(seq), "expected tokens again")
		})
	}
}

func Test_Tokens_lazy(t *testing.T) {
	var got []string
	for token := range Tokens("1 2 3 4") {
		got = append(got, token)
		if token == "2" {
			break
		}
	}
	assert.Equal(t, []string{"1", "2"}, got)
}

func Test_isNumeral(t *testing.T) {
	for _, token := range []string{"0", "7", "-1", "+1", "-0", "0042", "99999999999999999999999"} {
		assert.True(t, isNumeral(token), "expected %q to be a numeral", token)
	}
	for _, token := range []string{"", "-", "+", "--1", "+-1", "1-", "1.5", "0x10", "1_000", "DUP", "٣"} {
		assert.False(t, isNumeral(token), "expected %q to not be a numeral", token)
	}
}
