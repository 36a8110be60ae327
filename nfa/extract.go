package nfa

// ExtractAlternationLiterals inspects pattern's parsed syntax tree and, if
// every top-level alternation branch (or the whole pattern, for a
// non-alternated pattern) reduces to a fixed literal byte sequence with no
// regex operators, returns that set of literals and true. It returns
// (nil, false) for any pattern containing a branch built from a class, dot,
// repetition, group, or assertion, since those can't be reduced to a fixed
// string a prefilter could search for directly.
//
// This powers the prefilter package's Aho-Corasick acceleration for
// alternation patterns like "error|warning|fatal".
func ExtractAlternationLiterals(pattern []byte) ([][]byte, bool) {
	tree, _, err := Parse(pattern)
	if err != nil {
		return nil, false
	}

	var branches []*ast
	if tree.kind == astAlternate {
		branches = tree.children
	} else {
		branches = []*ast{tree}
	}

	lits := make([][]byte, 0, len(branches))
	for _, b := range branches {
		lit, ok := literalOf(b)
		if !ok {
			return nil, false
		}
		lits = append(lits, lit)
	}
	return lits, true
}

// literalOf reduces n to a fixed byte sequence if it is built entirely from
// literal atoms concatenated together, with no classes, quantifiers,
// groups, or assertions anywhere in it.
func literalOf(n *ast) ([]byte, bool) {
	switch n.kind {
	case astLiteral:
		return []byte{n.lit}, true
	case astConcat:
		var out []byte
		for _, c := range n.children {
			b, ok := literalOf(c)
			if !ok {
				return nil, false
			}
			out = append(out, b...)
		}
		return out, true
	default:
		return nil, false
	}
}
