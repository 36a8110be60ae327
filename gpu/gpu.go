// Package gpu implements the host side of the GPU kernel contract: the
// structs a real compute kernel would be dispatched with, and a
// goroutine-per-line simulation of that kernel standing in for a
// cgo/Vulkan/CUDA binding this module does not ship.
package gpu

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/vecgrep/vecgrep/engine"
	"github.com/vecgrep/vecgrep/internal/conv"
	"github.com/vecgrep/vecgrep/simd"
)

const (
	// MinSize is the input length below which dispatch prefers the CPU path.
	MinSize = 128 * 1024
	// MaxBufferSize is the largest input a single dispatch accepts.
	MaxBufferSize = 64 * 1024 * 1024
	// MaxResults bounds the match-record output array.
	MaxResults = 1_000_000
	// MaxFields bounds the field-record output the host fills in after
	// results return (see Dispatch's doc comment).
	MaxFields = 100_000
)

// Flags mirrors the flags word a real kernel would read from a uniform
// buffer: which matching behaviour to apply per line.
type Flags struct {
	CaseInsensitive bool
	InvertMatch     bool
}

// LineSpan is one line's [Start, End) offsets into the uploaded input
// buffer, computed on the host since line discovery is not on the kernel's
// critical path.
type LineSpan struct {
	Start uint32
	End   uint32
}

// ComputeLineSpans walks input once and returns its line boundaries, the
// host-side precompute step the contract requires before dispatch.
func ComputeLineSpans(input []byte) []LineSpan {
	var spans []LineSpan
	lineStart := 0
	for lineStart < len(input) {
		nl := simd.FindNextNewline(input, lineStart)
		spans = append(spans, LineSpan{Start: conv.IntToUint32(lineStart), End: conv.IntToUint32(nl)})
		if nl == len(input) {
			break
		}
		lineStart = nl + 1
	}
	return spans
}

// Dispatch simulates the kernel: one goroutine per line (one "thread"),
// synchronised only through an atomic counter reserving a slot in a
// pre-sized output array, exactly as the contract specifies. A slot index at
// or beyond MaxResults is dropped silently — the returned count is whatever
// the counter ends up holding, truncation included.
//
// Every returned record has FieldCount == 0: field splitting is not part of
// the simulated kernel, matching the real contract's division of labour —
// the host fills fields per match with the CPU field splitter and patches
// FieldCount back in afterward.
//
// Cross-line ordering is unspecified during dispatch, so the results are
// sorted by LineNum before being returned, matching this system's ordering
// guarantee.
func Dispatch(input []byte, spans []LineSpan, matcher engine.Matcher, flags Flags) []engine.MatchRecord {
	out := make([]engine.MatchRecord, MaxResults)
	var count uint32

	var wg sync.WaitGroup
	wg.Add(len(spans))
	for lineNum, span := range spans {
		go func(lineNum int, span LineSpan) {
			defer wg.Done()
			line := input[span.Start:span.End]
			matched, start, end := lineMatches(matcher, line)
			if matched == flags.InvertMatch {
				return
			}
			slot := atomic.AddUint32(&count, 1) - 1
			if slot >= MaxResults {
				return
			}
			rec := engine.MatchRecord{
				LineStart: span.Start,
				LineEnd:   span.End,
				LineNum:   uint32(lineNum),
			}
			if matcher != nil && !flags.InvertMatch {
				rec.MatchStart = conv.IntToUint32(start)
				rec.MatchEnd = conv.IntToUint32(end)
			}
			out[slot] = rec
		}(lineNum, span)
	}
	wg.Wait()

	results := out[:min(int(count), MaxResults)]
	sort.Slice(results, func(i, j int) bool { return results[i].LineNum < results[j].LineNum })
	return results
}

func lineMatches(matcher engine.Matcher, line []byte) (bool, int, int) {
	if matcher == nil {
		return true, 0, 0
	}
	start, end, ok := matcher.Find(line, 0)
	return ok, start, end
}
