// Boyer-Moore-Horspool literal matching: the fixed-string path of vecgrep's
// matching core, selected whenever a pattern has no regex metacharacters.
package literal

import "github.com/vecgrep/vecgrep/simd"

// MaxShift caps the skip-table distance, matching the bound used by
// Horspool's original algorithm: no shift is ever larger than the pattern
// length, and this module additionally caps it at 255 so the table fits in
// a byte if ever serialized to the GPU kernel contract alongside a literal
// pattern.
const MaxShift = 255

// Table is a precomputed 256-entry Boyer-Moore-Horspool skip table for a
// fixed pattern. Building it once and reusing it across many searches is the
// whole point of the algorithm.
type Table struct {
	pattern    []byte
	ignoreCase bool
	skip       [256]int
}

// Build constructs a skip table for pattern. When ignoreCase is true, pattern
// must already be lowered (see simd.ToLowerLane) and the table additionally
// maps both cases of every letter to the same skip distance, so the search
// can compare the input byte (lowered on the fly) against the lowered
// pattern.
//
// An empty pattern produces a Table that Search always reports as found at
// offset 0 — callers needing "empty pattern matches everywhere" semantics
// should special-case it before reaching here (see engine.Run, which treats
// a nil matcher as matching every line), since BMH
// itself has no meaningful skip table for a zero-length needle.
func Build(pattern []byte, ignoreCase bool) *Table {
	t := &Table{pattern: pattern, ignoreCase: ignoreCase}
	n := len(pattern)

	def := n
	if def > MaxShift {
		def = MaxShift
	}
	if def < 1 {
		def = 1
	}
	for i := range t.skip {
		t.skip[i] = def
	}

	if n == 0 {
		return t
	}

	// Skip distance for every byte except the last: how far to shift so that
	// the rightmost occurrence of that byte in pattern[0:n-1] aligns under
	// the current window's last byte.
	for i := 0; i < n-1; i++ {
		shift := n - 1 - i
		if shift > MaxShift {
			shift = MaxShift
		}
		if shift < 1 {
			shift = 1
		}
		t.skip[pattern[i]] = shift
		if ignoreCase {
			t.skip[swapCase(pattern[i])] = shift
		}
	}

	return t
}

func swapCase(b byte) byte {
	switch {
	case b >= 'a' && b <= 'z':
		return b - 32
	case b >= 'A' && b <= 'Z':
		return b + 32
	default:
		return b
	}
}

// PatternLen returns the length of the pattern the table was built for, so a
// caller holding only an offset from Search can recover the matched span.
func (t *Table) PatternLen() int {
	return len(t.pattern)
}

// Search returns the leftmost match offset of the table's pattern within
// line, and whether a match was found. If line is shorter than the pattern,
// Search returns (0, false) without scanning, per spec §4.B.
func (t *Table) Search(line []byte) (int, bool) {
	n := len(t.pattern)
	if n == 0 {
		return 0, true
	}
	if len(line) < n {
		return 0, false
	}

	pos := 0
	last := n - 1
	for pos+n <= len(line) {
		window := line[pos : pos+n]
		if t.matches(window) {
			return pos, true
		}
		shift := t.skip[window[last]]
		if shift < 1 {
			shift = 1
		}
		pos += shift
	}
	return 0, false
}

// matches compares window against the pattern, lowering window bytes on the
// fly when the table is case-insensitive.
func (t *Table) matches(window []byte) bool {
	if !t.ignoreCase {
		for i := range t.pattern {
			if window[i] != t.pattern[i] {
				return false
			}
		}
		return true
	}
	for i := range t.pattern {
		if loweredByte(window[i]) != t.pattern[i] {
			return false
		}
	}
	return true
}

func loweredByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

// Lower lowers an ASCII byte slice in place using the vectorised lane
// primitive, returning it for chaining. Callers build a case-insensitive
// Table from the result.
func Lower(pattern []byte) []byte {
	return simd.ToLowerLane(pattern)
}
