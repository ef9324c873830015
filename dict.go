package forth

import (
	"strings"

	"golang.org/x/text/cases"
)

// Definition is a word's name, as most recently written, and its compiled
// code. The code is flat: any word used while defining it was already copied
// in by value, so later redefinitions do not reach into it.
type Definition struct {
	Name string
	code []instr
}

// String formats the definition in source-like form, e.g.
// ": SQUARE dup mul ;".
func (def Definition) String() string {
	var sb strings.Builder
	sb.WriteString(": ")
	sb.WriteString(def.Name)
	for _, in := range def.code {
		sb.WriteByte(' ')
		sb.WriteString(in.String())
	}
	sb.WriteString(" ;")
	return sb.String()
}

// Dictionary maps case-folded word names to definitions. Built-in words are
// ordinary entries, so overriding one is the same as redefining any word.
//
// Entries are kept in the order that their names were first defined; a
// redefinition overwrites in place.
type Dictionary struct {
	fold  cases.Caser
	index map[string]int
	defs  []Definition
}

func newDictionary() *Dictionary {
	dict := &Dictionary{
		fold:  cases.Fold(),
		index: make(map[string]int, opMax),
	}
	for code := opFirstBuiltin; code < opMax; code++ {
		dict.define(builtinWords[code], []instr{{code: code}})
	}
	return dict
}

func (dict *Dictionary) key(name string) string {
	return dict.fold.String(name)
}

func (dict *Dictionary) lookup(name string) (Definition, bool) {
	if i, defined := dict.index[dict.key(name)]; defined {
		return dict.defs[i], true
	}
	return Definition{}, false
}

func (dict *Dictionary) define(name string, code []instr) {
	def := Definition{Name: name, code: code}
	key := dict.key(name)
	if i, defined := dict.index[key]; defined {
		dict.defs[i] = def
		return
	}
	dict.index[key] = len(dict.defs)
	dict.defs = append(dict.defs, def)
}

// complete returns the names of words whose folded name starts with the
// folded prefix, in dictionary order.
func (dict *Dictionary) complete(prefix string) (names []string) {
	prefix = dict.key(prefix)
	for _, def := range dict.defs {
		if strings.HasPrefix(dict.key(def.Name), prefix) {
			names = append(names, def.Name)
		}
	}
	return names
}

func (dict *Dictionary) names() []string {
	names := make([]string, len(dict.defs))
	for i, def := range dict.defs {
		names[i] = def.Name
	}
	return names
}
