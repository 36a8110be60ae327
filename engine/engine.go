// Package engine drives the line-by-line scan that turns a matcher and a
// set of options into match and field records over a whole input buffer.
package engine

import (
	"github.com/vecgrep/vecgrep/field"
	"github.com/vecgrep/vecgrep/internal/conv"
	"github.com/vecgrep/vecgrep/simd"
)

// Matcher finds the first match of a pattern in line, starting no earlier
// than from. Both literal and regex backends implement this so the engine
// never needs to know which one it's driving.
type Matcher interface {
	Find(line []byte, from int) (start, end int, ok bool)
}

// MatchRecord describes one selected line. MatchStart/MatchEnd are relative
// to LineStart and are zero/zero when there is no match concept to report
// (an empty pattern, or an inverted match).
type MatchRecord struct {
	LineStart  uint32
	LineEnd    uint32
	MatchStart uint32
	MatchEnd   uint32
	LineNum    uint32
	FieldCount uint32
}

// FieldRecord is one field of a selected line. FieldIdx is 1-indexed per
// AWK convention; StartOffset/EndOffset are relative to the owning line's
// LineStart, matching field.Record.
type FieldRecord struct {
	LineIdx     uint32
	FieldIdx    uint32
	StartOffset uint32
	EndOffset   uint32
}

// Options configures a run across the whole core: which lines are selected,
// how fields are split, and how substitution is driven. FieldSeparator nil
// or empty means whitespace mode (see the field package); RequestedFields
// and OutputFieldSeparator are carried through for the CLI collaborator to
// act on and otherwise ignored by the core, which always computes every
// field.
type Options struct {
	CaseInsensitive      bool
	InvertMatch          bool
	FieldSeparator       []byte
	OutputFieldSeparator []byte
	RequestedFields      []int
	GlobalSubstitution   bool
	SplitFields          bool
}

// Run scans input line by line (a trailing line with no terminating newline
// still counts), tests each line against matcher (a nil matcher treats every
// line as matched), and appends a MatchRecord for every selected line. When
// opts.SplitFields is set, it also appends the line's FieldRecords.
func Run(input []byte, matcher Matcher, opts Options) ([]MatchRecord, []FieldRecord) {
	var matches []MatchRecord
	var fields []FieldRecord

	lineNum := uint32(0)
	lineStart := 0
	for lineStart < len(input) {
		nl := simd.FindNextNewline(input, lineStart)
		lineEnd := nl
		lastLine := nl == len(input)
		line := input[lineStart:lineEnd]

		matched, matchStart, matchEnd := testLine(matcher, line)
		if matched != opts.InvertMatch {
			rec := MatchRecord{
				LineStart: conv.IntToUint32(lineStart),
				LineEnd:   conv.IntToUint32(lineEnd),
				LineNum:   lineNum,
			}
			if matcher != nil && !opts.InvertMatch {
				rec.MatchStart = conv.IntToUint32(matchStart)
				rec.MatchEnd = conv.IntToUint32(matchEnd)
			}
			if opts.SplitFields {
				lineIdx := uint32(len(matches))
				recs, count := field.Split(nil, line, opts.FieldSeparator)
				for i, r := range recs {
					fields = append(fields, FieldRecord{
						LineIdx:     lineIdx,
						FieldIdx:    uint32(i + 1),
						StartOffset: r.StartOffset,
						EndOffset:   r.EndOffset,
					})
				}
				rec.FieldCount = count
			}
			matches = append(matches, rec)
		}

		if lastLine {
			break
		}
		lineStart = nl + 1
		lineNum++
	}

	return matches, fields
}

func testLine(matcher Matcher, line []byte) (matched bool, start, end int) {
	if matcher == nil {
		return true, 0, 0
	}
	start, end, ok := matcher.Find(line, 0)
	return ok, start, end
}
