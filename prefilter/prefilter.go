// Package prefilter accelerates alternation patterns whose every branch
// reduces to a fixed literal (e.g. "error|warning|fatal") by running an
// Aho-Corasick automaton in place of the NFA, mirroring the teacher's
// UseAhoCorasick strategy for large literal sets.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/vecgrep/vecgrep/literal"
)

// Prefilter quickly finds candidate match positions before the full regex
// engine runs. For a pure literal-alternation pattern it is itself a
// complete matcher: no further NFA verification is needed.
type Prefilter interface {
	// Find returns the [start, end) of the first candidate at or after
	// start, or ok=false if none exists.
	Find(haystack []byte, start int) (matchStart, matchEnd int, ok bool)

	// IsMatch reports whether haystack contains any candidate at all,
	// without computing offsets.
	IsMatch(haystack []byte) bool
}

// ahoCorasickPrefilter wraps a built automaton over a fixed literal set.
type ahoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) (int, int, bool) {
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

func (p *ahoCorasickPrefilter) IsMatch(haystack []byte) bool {
	return p.automaton.IsMatch(haystack)
}

// Build inspects pattern for a top-level literal alternation and, if found,
// returns an Aho-Corasick-backed Prefilter and true. It returns (nil,
// false) for any pattern that isn't a pure alternation of fixed literals —
// the caller falls back to the plain NFA path in that case.
func Build(pattern []byte) (Prefilter, bool) {
	seq, ok := literal.ExtractAlternationSeq(pattern)
	if !ok || seq.Len() < 2 {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &ahoCorasickPrefilter{automaton: automaton}, true
}
