package literal

import "github.com/vecgrep/vecgrep/nfa"

// ExtractAlternationSeq builds a Seq of the fixed literals making up
// pattern's top-level alternation, for patterns like "error|warning|fatal"
// where every branch is a plain string. It reports false when any branch
// uses a class, quantifier, group, or assertion, since those can't be
// reduced to a literal set a prefilter could search for.
//
// The returned Seq's literals are all Complete: matching any one of them at
// a position is itself a full regex match, not just a necessary substring,
// since the source pattern is nothing but a bare alternation of literals.
func ExtractAlternationSeq(pattern []byte) (*Seq, bool) {
	lits, ok := nfa.ExtractAlternationLiterals(pattern)
	if !ok {
		return nil, false
	}
	literals := make([]Literal, len(lits))
	for i, l := range lits {
		literals[i] = NewLiteral(l, true)
	}
	return NewSeq(literals...), true
}
