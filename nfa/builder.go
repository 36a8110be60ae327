package nfa

import "fmt"

// Builder constructs a Program incrementally using a low-level API:
// compile helpers add states with dangling out-edges and patch them once
// the destination is known, following the classic Thompson-construction
// pattern of returning an open fragment and closing it later.
type Builder struct {
	states  []State
	bitmaps *BitmapPool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{bitmaps: NewBitmapPool()}
}

// Bitmaps returns the builder's character-class pool, for embedding in the
// finished Program.
func (b *Builder) Bitmaps() *BitmapPool {
	return b.bitmaps
}

func (b *Builder) add(s State) uint32 {
	id := uint32(len(b.states))
	b.states = append(b.states, s)
	return id
}

// AddMatch appends an accepting state.
func (b *Builder) AddMatch() uint32 {
	return b.add(State{Kind: KindMatch})
}

// AddLiteral appends a state matching lit, out-edge dangling (InvalidState).
func (b *Builder) AddLiteral(lit byte, caseInsensitive bool) uint32 {
	return b.add(State{Kind: KindLiteral, Literal: lit, CaseInsensitive: caseInsensitive, Out1: InvalidState})
}

// AddCharClass appends a state matching any byte set in the class at the
// given bitmap offset, out-edge dangling.
func (b *Builder) AddCharClass(offset uint32) uint32 {
	return b.add(State{Kind: KindCharClass, ClassOffset: offset, Out1: InvalidState})
}

// AddDot appends a "." state (any byte but newline), out-edge dangling.
func (b *Builder) AddDot() uint32 {
	return b.add(State{Kind: KindDot, Out1: InvalidState})
}

// AddAny appends a state matching any byte including newline, out-edge
// dangling.
func (b *Builder) AddAny() uint32 {
	return b.add(State{Kind: KindAny, Out1: InvalidState})
}

// AddSplit appends an alternation state with both out-edges dangling; left
// is the preferred branch under leftmost-first semantics.
func (b *Builder) AddSplit() uint32 {
	return b.add(State{Kind: KindSplit, Out1: InvalidState, Out2: InvalidState})
}

// AddGroupStart appends a capture-start marker for the given group slot,
// out-edge dangling.
func (b *Builder) AddGroupStart(group uint32) uint32 {
	return b.add(State{Kind: KindGroupStart, Group: group, Out1: InvalidState})
}

// AddGroupEnd appends a capture-end marker for the given group slot,
// out-edge dangling.
func (b *Builder) AddGroupEnd(group uint32) uint32 {
	return b.add(State{Kind: KindGroupEnd, Group: group, Out1: InvalidState})
}

// AddAssertion appends a zero-width assertion state of the given kind,
// out-edge dangling.
func (b *Builder) AddAssertion(kind Kind) uint32 {
	return b.add(State{Kind: kind, Out1: InvalidState})
}

// SetOut1 patches a state's first out-edge (its only out-edge, for every
// non-split kind).
func (b *Builder) SetOut1(id, target uint32) {
	b.states[id].Out1 = target
}

// SetOut2 patches a split state's second out-edge.
func (b *Builder) SetOut2(id, target uint32) {
	s := &b.states[id]
	if s.Kind != KindSplit {
		panic(fmt.Sprintf("nfa: SetOut2 called on non-split state %d", id))
	}
	s.Out2 = target
}

// States returns the accumulated state table, for embedding in the
// finished Program.
func (b *Builder) States() []State {
	return b.states
}
