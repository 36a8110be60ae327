// Package subst implements whole-buffer find/replace: every non-overlapping
// match of a pattern across the entire input, not per line.
package subst

import (
	"github.com/vecgrep/vecgrep/internal/conv"
	"github.com/vecgrep/vecgrep/simd"
)

// Matcher finds the first match of a pattern in haystack at or after from.
type Matcher interface {
	Find(haystack []byte, from int) (start, end int, ok bool)
}

// Record describes one substitution applied to the input: Position is the
// absolute byte offset in the original input, MatchLen the length of the
// text replaced (which may differ per match for a regex pattern), and
// LineNum the 0-indexed line the match started on.
type Record struct {
	Position uint32
	MatchLen uint32
	LineNum  uint32
}

// Apply finds every non-overlapping match of matcher in input and replaces
// each with replacement. When global is false, only the first match is
// replaced. It returns the rewritten buffer (a fresh copy of input when
// there were no matches) and one Record per substitution performed.
//
// Matches never overlap: after a non-empty match the scan resumes at its
// end, and after a zero-width match it resumes one byte later, so a regex
// like "a*" can't match the same position twice.
func Apply(input []byte, matcher Matcher, replacement []byte, global bool) ([]byte, []Record) {
	type span struct{ start, end int }
	var matches []span

	for pos := 0; pos <= len(input); {
		start, end, ok := matcher.Find(input, pos)
		if !ok {
			break
		}
		matches = append(matches, span{start, end})
		if !global {
			break
		}
		if end > start {
			pos = end
		} else {
			pos = start + 1
		}
	}

	if len(matches) == 0 {
		out := make([]byte, len(input))
		copy(out, input)
		return out, nil
	}

	outLen := len(input)
	for _, m := range matches {
		outLen += len(replacement) - (m.end - m.start)
	}

	out := make([]byte, 0, outLen)
	records := make([]Record, 0, len(matches))
	src := 0
	lineNum := uint32(0)
	for _, m := range matches {
		lineNum += uint32(countNewlines(input[src:m.start]))
		out = append(out, input[src:m.start]...)
		out = append(out, replacement...)
		records = append(records, Record{
			Position: conv.IntToUint32(m.start),
			MatchLen: conv.IntToUint32(m.end - m.start),
			LineNum:  lineNum,
		})
		src = m.end
	}
	out = append(out, input[src:]...)

	return out, records
}

func countNewlines(b []byte) int {
	count := 0
	for pos := 0; ; {
		nl := simd.FindNextNewline(b, pos)
		if nl >= len(b) {
			return count
		}
		count++
		pos = nl + 1
	}
}
