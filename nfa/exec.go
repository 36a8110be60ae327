package nfa

import "github.com/vecgrep/vecgrep/internal/sparse"

// thread is one live execution path through a Program: the state it is
// currently waiting on, and the input offset it started matching from.
type thread struct {
	state uint32
	start int
}

// threadList is a priority-ordered set of live threads for one simulation
// step, deduplicated by state so that a lower-priority thread reaching a
// state already claimed by a higher-priority one is dropped — the
// standard Pike-VM trick that gives leftmost-first semantics for free.
type threadList struct {
	dense  []thread
	visited *sparse.SparseSet
}

func newThreadList(numStates int) *threadList {
	return &threadList{visited: sparse.NewSparseSet(uint32(numStates))}
}

func (l *threadList) clear() {
	l.dense = l.dense[:0]
	l.visited.Clear()
}

// addThread adds state to the list, following epsilon transitions (split,
// group markers, and zero-width assertions) until it reaches a
// byte-consuming state or a match state. start is the offset this thread's
// overall match began at, carried unchanged through the closure.
func addThread(prog *Program, list *threadList, state uint32, pos int, input []byte, start int) {
	if list.visited.Contains(state) {
		return
	}
	list.visited.Insert(state)

	s := &prog.States[state]
	switch s.Kind {
	case KindSplit:
		addThread(prog, list, s.Out1, pos, input, start)
		addThread(prog, list, s.Out2, pos, input, start)
	case KindGroupStart, KindGroupEnd:
		addThread(prog, list, s.Out1, pos, input, start)
	case KindLineStart:
		if pos == 0 || input[pos-1] == '\n' {
			addThread(prog, list, s.Out1, pos, input, start)
		}
	case KindLineEnd:
		if pos == len(input) || input[pos] == '\n' {
			addThread(prog, list, s.Out1, pos, input, start)
		}
	case KindWordBoundary, KindNotWordBoundary:
		before := pos > 0 && isWordByte(input[pos-1])
		after := pos < len(input) && isWordByte(input[pos])
		boundary := before != after
		if s.Kind == KindNotWordBoundary {
			boundary = !boundary
		}
		if boundary {
			addThread(prog, list, s.Out1, pos, input, start)
		}
	default:
		// KindLiteral, KindCharClass, KindDot, KindAny, KindMatch: this
		// thread is blocked on consuming a byte (or already accepting),
		// nothing more to do until the driver steps it.
		list.dense = append(list.dense, thread{state: state, start: start})
	}
}

func isWordByte(b byte) bool {
	return classMatches(wordItems(), false, b)
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

// stateMatchesByte reports whether consuming state s accepts input byte b.
func stateMatchesByte(prog *Program, s *State, b byte) bool {
	switch s.Kind {
	case KindLiteral:
		if s.CaseInsensitive {
			return toLowerByte(b) == s.Literal
		}
		return b == s.Literal
	case KindCharClass:
		return ClassContains(prog.Bitmaps, s.ClassOffset, b)
	case KindDot:
		return b != '\n'
	case KindAny:
		return true
	default:
		return false
	}
}

// Search runs prog's Pike-VM simulation over input starting no earlier than
// from, and returns the leftmost match's [start, end) offsets. Among
// threads sharing the same start, the one that consumes the most input
// wins, since the higher-priority (greedier) thread is always still live
// when a lower-priority thread first reaches Match and so gets a chance to
// overwrite the recorded match with a longer one on a later step.
//
// If prog.AnchoredStart is set, only the position "from" is tried as a
// start. If prog.AnchoredEnd is set, a Match is only accepted at exactly
// len(input).
func Search(prog *Program, input []byte, from int) (start, end int, ok bool) {
	clist := newThreadList(len(prog.States))
	nlist := newThreadList(len(prog.States))

	matched := false
	var matchStart, matchEnd int

	for pos := from; ; pos++ {
		if !matched && (pos == from || !prog.AnchoredStart) {
			addThread(prog, clist, prog.Start, pos, input, pos)
		}

		if clist.visited.IsEmpty() {
			if matched || prog.AnchoredStart {
				break
			}
			if pos >= len(input) {
				break
			}
			continue
		}

		var b byte
		hasByte := pos < len(input)
		if hasByte {
			b = input[pos]
		}

		for _, th := range clist.dense {
			s := &prog.States[th.state]
			if s.Kind == KindMatch {
				if !prog.AnchoredEnd || pos == len(input) {
					if !matched || th.start < matchStart || (th.start == matchStart && pos > matchEnd) {
						matched = true
						matchStart = th.start
						matchEnd = pos
					}
				}
				continue // a Match state has no out-edge to advance
			}
			if hasByte && stateMatchesByte(prog, s, b) {
				addThread(prog, nlist, s.Out1, pos+1, input, th.start)
			}
		}

		clist, nlist = nlist, clist
		nlist.clear()

		if !hasByte {
			break
		}
	}

	return matchStart, matchEnd, matched
}

// IsMatch reports whether prog matches anywhere in input. It runs the same
// Search from offset 0 and discards the match bounds.
func IsMatch(prog *Program, input []byte) bool {
	_, _, ok := Search(prog, input, 0)
	return ok
}
