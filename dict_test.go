package forth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Dictionary(t *testing.T) {
	dict := newDictionary()
	assert.Equal(t, []string{"+", "-", "*", "/", "DUP", "DROP", "SWAP", "OVER"}, dict.names())

	for code := opFirstBuiltin; code < opMax; code++ {
		def, defined := dict.lookup(builtinWords[code])
		if assert.True(t, defined, "expected builtin %v", code) {
			assert.Equal(t, []instr{{code: code}}, def.code, "expected builtin %v code", code)
		}
	}

	t.Run("folded lookup", func(t *testing.T) {
		for _, name := range []string{"dup", "Dup", "dUP"} {
			def, defined := dict.lookup(name)
			require.True(t, defined, "expected %q to be found", name)
			assert.Equal(t, "DUP", def.Name)
		}
		_, defined := dict.lookup("nope")
		assert.False(t, defined)
	})

	t.Run("define", func(t *testing.T) {
		dict.define("Straße", []instr{{code: opPushint, val: 1}})
		def, defined := dict.lookup("STRASSE")
		require.True(t, defined, "expected full case folding")
		assert.Equal(t, ": Straße pushint(1) ;", def.String())
	})

	t.Run("redefine in place", func(t *testing.T) {
		dict.define("drop", []instr{{code: opSwap}})
		assert.Equal(t, []string{"+", "-", "*", "/", "DUP", "drop", "SWAP", "OVER", "Straße"}, dict.names())
		def, _ := dict.lookup("DROP")
		assert.Equal(t, ": drop swap ;", def.String())
	})

	t.Run("complete", func(t *testing.T) {
		assert.Equal(t, dict.names(), dict.complete(""))
		assert.Equal(t, []string{"DUP", "drop"}, dict.complete("d"))
		assert.Equal(t, []string{"Straße"}, dict.complete("STRASS"))
		assert.Equal(t, []string{"Straße"}, dict.complete("straß"))
		assert.Nil(t, dict.complete("ß"))
	})

	t.Run("independent", func(t *testing.T) {
		other := newDictionary()
		def, _ := other.lookup("DROP")
		assert.Equal(t, ": DROP drop ;", def.String())
		_, defined := other.lookup("strasse")
		assert.False(t, defined)
	})
}

func Test_instr_String(t *testing.T) {
	assert.Equal(t, "pushint(-3)", instr{code: opPushint, val: -3}.String())
	assert.Equal(t, "over", instr{code: opOver}.String())
	assert.Equal(t, "op(200)", instr{code: 200}.String())
	assert.EqualError(t, New().step(instr{code: 200}), "invalid code 200")
}
