package nfa

import "fmt"

// CompileError reports a failure to turn a parsed pattern into a Program.
type CompileError struct {
	Msg string
	Err error
}

func (e *CompileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nfa: compile error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("nfa: compile error: %s", e.Msg)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Options controls how a pattern is compiled.
type Options struct {
	CaseInsensitive bool
	AnchoredStart   bool
	AnchoredEnd     bool
}

// dangling identifies one unpatched out-edge of a state: Out1 if out2 is
// false, Out2 otherwise.
type dangling struct {
	id   uint32
	out2 bool
}

// frag is a Thompson-construction fragment: an entry state plus a
// patch-list of every dangling out-edge that the next fragment in sequence
// must be wired into.
type frag struct {
	start uint32
	out   []dangling
}

// compiler walks a parsed ast and emits states into a Builder.
type compiler struct {
	b    *Builder
	opts Options
}

// Compile parses pattern and compiles it into a Program ready for
// execution by Search.
func Compile(pattern []byte, opts Options) (*Program, error) {
	tree, numGroups, err := Parse(pattern)
	if err != nil {
		return nil, &CompileError{Msg: "parse failed", Err: err}
	}

	c := &compiler{b: NewBuilder(), opts: opts}
	f, err := c.compile(tree)
	if err != nil {
		return nil, &CompileError{Msg: "compile failed", Err: err}
	}
	matchState := c.b.AddMatch()
	c.patch(f, matchState)

	return &Program{
		States:          c.b.States(),
		Bitmaps:         c.b.Bitmaps().Words(),
		Start:           f.start,
		NumGroups:       numGroups,
		AnchoredStart:   opts.AnchoredStart,
		AnchoredEnd:     opts.AnchoredEnd,
		CaseInsensitive: opts.CaseInsensitive,
	}, nil
}

// patch wires every dangling edge in f to target.
func (c *compiler) patch(f frag, target uint32) {
	for _, d := range f.out {
		if d.out2 {
			c.b.SetOut2(d.id, target)
		} else {
			c.b.SetOut1(d.id, target)
		}
	}
}

func single(id uint32) frag {
	return frag{start: id, out: []dangling{{id: id, out2: false}}}
}

func (c *compiler) compile(n *ast) (frag, error) {
	switch n.kind {
	case astLiteral:
		lit := n.lit
		if c.opts.CaseInsensitive {
			lit = toLowerByte(lit)
		}
		id := c.b.AddLiteral(lit, c.opts.CaseInsensitive)
		return single(id), nil
	case astClass:
		items, negate := n.items, n.negate
		if c.opts.CaseInsensitive {
			items = foldItems(items)
		}
		offset := c.b.Bitmaps().Add(func(b byte) bool { return classMatches(items, negate, b) })
		id := c.b.AddCharClass(offset)
		return single(id), nil
	case astDot:
		id := c.b.AddDot()
		return single(id), nil
	case astLineStart:
		id := c.b.AddAssertion(KindLineStart)
		return single(id), nil
	case astLineEnd:
		id := c.b.AddAssertion(KindLineEnd)
		return single(id), nil
	case astWordBoundary:
		id := c.b.AddAssertion(KindWordBoundary)
		return single(id), nil
	case astNotWordBoundary:
		id := c.b.AddAssertion(KindNotWordBoundary)
		return single(id), nil
	case astConcat:
		return c.compileConcat(n.children)
	case astAlternate:
		return c.compileAlternate(n.children)
	case astStar:
		return c.compileStar(n.children[0])
	case astPlus:
		return c.compilePlus(n.children[0])
	case astQuest:
		return c.compileQuest(n.children[0])
	case astGroup:
		return c.compileGroup(n)
	default:
		return frag{}, fmt.Errorf("nfa: unhandled ast kind %d", n.kind)
	}
}

// compileConcat chains child fragments start to end. An empty sequence
// (an empty pattern or an empty alternation branch, e.g. "a|") compiles to
// a pure epsilon: a split state whose two out-edges are both patched to the
// same target, so stepping through it consumes no input.
func (c *compiler) compileConcat(children []*ast) (frag, error) {
	if len(children) == 0 {
		id := c.b.AddSplit()
		return frag{start: id, out: []dangling{{id: id, out2: false}, {id: id, out2: true}}}, nil
	}

	first, err := c.compile(children[0])
	if err != nil {
		return frag{}, err
	}
	result := first
	for _, child := range children[1:] {
		next, err := c.compile(child)
		if err != nil {
			return frag{}, err
		}
		c.patch(result, next.start)
		result = frag{start: result.start, out: next.out}
	}
	return result, nil
}

// compileAlternate builds a left-leaning chain of split states selecting
// among branches in order, so the first branch is always tried first under
// leftmost-first semantics. Every branch's dangling out-edges flow into the
// returned fragment's patch-list unchanged: there is no separate join
// state, since patch-lists already let an arbitrary number of edges share
// one eventual target.
func (c *compiler) compileAlternate(children []*ast) (frag, error) {
	branches := make([]frag, len(children))
	for i, child := range children {
		f, err := c.compile(child)
		if err != nil {
			return frag{}, err
		}
		branches[i] = f
	}

	var out []dangling
	for _, f := range branches {
		out = append(out, f.out...)
	}

	if len(branches) == 1 {
		return frag{start: branches[0].start, out: out}, nil
	}

	entry := c.b.AddSplit()
	cur := entry
	for i := 0; i < len(branches)-1; i++ {
		c.b.SetOut1(cur, branches[i].start)
		if i == len(branches)-2 {
			c.b.SetOut2(cur, branches[len(branches)-1].start)
		} else {
			next := c.b.AddSplit()
			c.b.SetOut2(cur, next)
			cur = next
		}
	}
	return frag{start: entry, out: out}, nil
}

// compileStar builds a greedy "zero or more": the entry split prefers
// entering the loop body over exiting, and the body's end loops back to
// the same split.
func (c *compiler) compileStar(child *ast) (frag, error) {
	body, err := c.compile(child)
	if err != nil {
		return frag{}, err
	}
	entry := c.b.AddSplit()
	c.b.SetOut1(entry, body.start)
	c.patch(body, entry)
	return frag{start: entry, out: []dangling{{id: entry, out2: true}}}, nil
}

// compilePlus builds a greedy "one or more": the body is mandatory on
// entry, then loops through a split exactly like compileStar.
func (c *compiler) compilePlus(child *ast) (frag, error) {
	body, err := c.compile(child)
	if err != nil {
		return frag{}, err
	}
	entry := c.b.AddSplit()
	c.b.SetOut1(entry, body.start)
	c.patch(body, entry)
	return frag{start: body.start, out: []dangling{{id: entry, out2: true}}}, nil
}

// compileQuest builds a greedy "zero or one": prefer taking the body, fall
// through to the skip path otherwise. Both the body's own dangling edges
// and the skip edge feed the returned fragment's patch-list.
func (c *compiler) compileQuest(child *ast) (frag, error) {
	body, err := c.compile(child)
	if err != nil {
		return frag{}, err
	}
	entry := c.b.AddSplit()
	c.b.SetOut1(entry, body.start)
	out := append([]dangling{{id: entry, out2: true}}, body.out...)
	return frag{start: entry, out: out}, nil
}

func (c *compiler) compileGroup(n *ast) (frag, error) {
	body, err := c.compile(n.children[0])
	if err != nil {
		return frag{}, err
	}
	startG := c.b.AddGroupStart(n.group)
	endG := c.b.AddGroupEnd(n.group)
	c.b.SetOut1(startG, body.start)
	c.patch(body, endG)
	return frag{start: startG, out: []dangling{{id: endG, out2: false}}}, nil
}

// ClassifyRegexLike reports whether pattern contains any byte that would
// require the regex engine rather than a plain literal search: any of
// ".*+?[](){}|^$\\". A pattern with none of these bytes is a fixed string
// and can always take the literal (bmh) path instead of compiling an NFA.
func ClassifyRegexLike(pattern []byte) bool {
	for _, b := range pattern {
		switch b {
		case '.', '*', '+', '?', '[', ']', '(', ')', '{', '}', '|', '^', '$', '\\':
			return true
		}
	}
	return false
}
