// Package nfa compiles vecgrep's ERE-subset regex dialect into a Thompson
// NFA and executes it with a Pike-VM-style simulation (spec components C
// and D).
//
// The state representation favors a flat, GPU-upload-friendly layout over
// the richer per-state transition slices a general-purpose engine would use:
// every state is a fixed-size struct, and character classes are stored out
// of line in a shared bitmap pool referenced by offset. This mirrors the
// wire format the dispatch layer hands to the simulated compute backend.
package nfa

// Kind identifies the transition behavior of a State.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindCharClass
	KindDot
	KindAny
	KindSplit
	KindMatch
	KindGroupStart
	KindGroupEnd
	KindWordBoundary
	KindNotWordBoundary
	KindLineStart
	KindLineEnd
)

// InvalidState marks an out-edge that has not yet been patched.
const InvalidState uint32 = 1<<32 - 1

// State is one node of the compiled NFA. Its meaning depends on Kind:
//
//   - KindLiteral: matches Literal, advances to Out1.
//   - KindCharClass: matches any byte set in the bitmap at ClassOffset, advances to Out1.
//   - KindDot: matches any byte except '\n', advances to Out1.
//   - KindAny: matches any byte including '\n', advances to Out1.
//   - KindSplit: epsilon transitions to both Out1 and Out2 (Out1 tried first).
//   - KindMatch: accepting state, no out-edges.
//   - KindGroupStart, KindGroupEnd: epsilon transition to Out1, tagged with
//     the capture group number in Group; the executor records no offsets
//     for them.
//   - KindWordBoundary, KindNotWordBoundary, KindLineStart, KindLineEnd:
//     zero-width assertions, epsilon transition to Out1 if satisfied.
type State struct {
	Kind            Kind
	Out1            uint32
	Out2            uint32
	Literal         byte
	CaseInsensitive bool
	ClassOffset     uint32
	Group           uint32
}

// Program is a compiled regex: a flat state table plus the shared bitmap
// pool its KindCharClass states reference. It carries no behavior of its
// own — Search in exec.go walks it.
type Program struct {
	States          []State
	Bitmaps         []uint32
	Start           uint32
	NumGroups       uint32
	AnchoredStart   bool
	AnchoredEnd     bool
	CaseInsensitive bool
}
