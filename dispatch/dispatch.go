// Package dispatch classifies a pattern and an input size and selects which
// backend runs the search: CPU (BMH or NFA) or the simulated GPU path,
// falling back to CPU whenever the GPU path fails or can't apply.
package dispatch

import (
	"github.com/vecgrep/vecgrep/engine"
	"github.com/vecgrep/vecgrep/field"
	"github.com/vecgrep/vecgrep/gpu"
	"github.com/vecgrep/vecgrep/literal"
	"github.com/vecgrep/vecgrep/nfa"
	"github.com/vecgrep/vecgrep/prefilter"
	"github.com/vecgrep/vecgrep/subst"
)

// Backend names the execution path a caller can request explicitly, or Auto
// to let Search decide from the input size.
type Backend int

const (
	Auto Backend = iota
	CPU
	GPU
)

func (b Backend) String() string {
	switch b {
	case CPU:
		return "cpu"
	case GPU:
		return "gpu"
	default:
		return "auto"
	}
}

// Options bundles the line engine's configuration with the pattern and
// backend choice the CLI collaborator exposes.
type Options struct {
	engine.Options
	Pattern []byte
	Backend Backend
}

// literalMatcher adapts a BMH Table, whose Search has no start offset, to
// the Find(haystack, from) contract engine and subst both expect.
type literalMatcher struct {
	table *literal.Table
}

func (m literalMatcher) Find(haystack []byte, from int) (int, int, bool) {
	if from > len(haystack) {
		return 0, 0, false
	}
	idx, ok := m.table.Search(haystack[from:])
	if !ok {
		return 0, 0, false
	}
	start := from + idx
	return start, start + m.table.PatternLen(), true
}

// regexMatcher adapts the package-level nfa.Search function to the same
// contract.
type regexMatcher struct {
	prog *nfa.Program
}

func (m regexMatcher) Find(haystack []byte, from int) (int, int, bool) {
	return nfa.Search(m.prog, haystack, from)
}

// buildMatcher classifies pattern and returns the cheapest matcher able to
// run it. A pure literal alternation ("error|warning|fatal") is served
// entirely by prefilter.Build's Aho-Corasick automaton, which already
// satisfies this contract directly — no NFA is even compiled. The automaton
// matches case-sensitively, so a case-insensitive alternation compiles to an
// NFA instead. Anything else regex-like compiles to an NFA; anything else is
// a plain literal. A
// regex-like pattern that fails to compile (unbalanced groups, a trailing
// backslash, ...) downgrades silently to a literal search over the raw
// pattern bytes rather than surfacing the compile error to the caller.
func buildMatcher(pattern []byte, caseInsensitive bool) engine.Matcher {
	if len(pattern) == 0 {
		return nil
	}
	if !nfa.ClassifyRegexLike(pattern) {
		return buildLiteralMatcher(pattern, caseInsensitive)
	}
	if !caseInsensitive {
		if pf, ok := prefilter.Build(pattern); ok {
			return pf
		}
	}
	prog, err := nfa.Compile(pattern, nfa.Options{CaseInsensitive: caseInsensitive})
	if err != nil {
		return buildLiteralMatcher(pattern, caseInsensitive)
	}
	return regexMatcher{prog: prog}
}

func buildLiteralMatcher(pattern []byte, caseInsensitive bool) engine.Matcher {
	lit := pattern
	if caseInsensitive {
		lit = literal.Lower(append([]byte(nil), pattern...))
	}
	return literalMatcher{table: literal.Build(lit, caseInsensitive)}
}

// Search runs the line engine over input, selecting the simulated GPU path
// in auto mode once input crosses gpu.MinSize and falling back to the CPU
// path silently on any GPU-side failure (oversized input, in this build's
// case — see gpu.MaxBufferSize).
func Search(input []byte, opts Options) ([]engine.MatchRecord, []engine.FieldRecord, error) {
	matcher := buildMatcher(opts.Pattern, opts.CaseInsensitive)

	if selectBackend(opts.Backend, len(input)) == GPU {
		if matches, fields, ok := searchGPU(input, matcher, opts); ok {
			return matches, fields, nil
		}
	}

	matches, fields := engine.Run(input, matcher, opts.Options)
	return matches, fields, nil
}

// Substitute always runs on CPU: the simulated GPU kernel contract covers
// only matching and field splitting, never substitution.
func Substitute(input []byte, opts Options, replacement []byte) ([]byte, []subst.Record, error) {
	matcher := buildMatcher(opts.Pattern, opts.CaseInsensitive)
	if matcher == nil {
		out := make([]byte, len(input))
		copy(out, input)
		return out, nil, nil
	}
	out, records := subst.Apply(input, matcher, replacement, opts.GlobalSubstitution)
	return out, records, nil
}

func selectBackend(requested Backend, inputLen int) Backend {
	switch requested {
	case CPU, GPU:
		return requested
	default:
		if inputLen < gpu.MinSize {
			return CPU
		}
		return GPU
	}
}

// searchGPU dispatches the simulated kernel and, on success, fills in field
// records on the host the way the real contract requires. It reports ok=
// false when the input exceeds the per-dispatch buffer cap, the one GPU-path
// failure this simulation can produce.
func searchGPU(input []byte, matcher engine.Matcher, opts Options) ([]engine.MatchRecord, []engine.FieldRecord, bool) {
	if len(input) > gpu.MaxBufferSize {
		return nil, nil, false
	}

	spans := gpu.ComputeLineSpans(input)
	matches := gpu.Dispatch(input, spans, matcher, gpu.Flags{
		CaseInsensitive: opts.CaseInsensitive,
		InvertMatch:     opts.InvertMatch,
	})

	if !opts.SplitFields {
		return matches, nil, true
	}
	return matches, fillFields(input, matches, opts.FieldSeparator), true
}

// fillFields patches in field records the simulated GPU kernel leaves at
// zero, stopping once gpu.MaxFields are collected — the same bounded-output
// contract as gpu.Dispatch's MaxResults cap, silently truncated rather than
// grown without limit.
func fillFields(input []byte, matches []engine.MatchRecord, sep []byte) []engine.FieldRecord {
	var fields []engine.FieldRecord
	for i := range matches {
		if len(fields) >= gpu.MaxFields {
			break
		}
		line := input[matches[i].LineStart:matches[i].LineEnd]
		recs, count := field.Split(nil, line, sep)
		for j, r := range recs {
			if len(fields) >= gpu.MaxFields {
				break
			}
			fields = append(fields, engine.FieldRecord{
				LineIdx:     uint32(i),
				FieldIdx:    uint32(j + 1),
				StartOffset: r.StartOffset,
				EndOffset:   r.EndOffset,
			})
		}
		matches[i].FieldCount = count
	}
	return fields
}
