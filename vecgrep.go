// Package vecgrep is a byte-oriented, AWK-flavoured text engine: literal and
// regex line selection, field splitting, whole-buffer substitution, and a
// backend dispatcher that picks between a CPU path and a simulated GPU path.
//
// The core is a pair of stateless entry points, Search and Substitute, built
// from the same Options value the CLI collaborator in cmd/vecgrep exercises.
//
// Example:
//
//	opts := vecgrep.Options{Pattern: []byte(`[0-9]+`)}
//	matches, _, err := vecgrep.Search(input, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range matches {
//	    fmt.Println(string(input[m.LineStart:m.LineEnd]))
//	}
package vecgrep

import (
	"github.com/vecgrep/vecgrep/dispatch"
	"github.com/vecgrep/vecgrep/engine"
	"github.com/vecgrep/vecgrep/subst"
)

// Backend selects which engine executes a search: CPU, the simulated GPU
// path, or Auto (the input size decides).
type Backend = dispatch.Backend

const (
	Auto = dispatch.Auto
	CPU  = dispatch.CPU
	GPU  = dispatch.GPU
)

// Options configures a Search or Substitute call: the pattern, the backend
// to use, and the line-engine behaviour (case folding, inversion, field
// separator, global substitution) described in engine.Options.
type Options = dispatch.Options

// MatchRecord describes one selected line; see engine.MatchRecord.
type MatchRecord = engine.MatchRecord

// FieldRecord describes one field of a selected line; see engine.FieldRecord.
type FieldRecord = engine.FieldRecord

// SubstitutionRecord describes one replacement made by Substitute; see
// subst.Record.
type SubstitutionRecord = subst.Record

// Search classifies opts.Pattern, selects a backend, and scans input line by
// line, returning one MatchRecord per selected line (XOR'd with
// opts.InvertMatch) and, when opts.SplitFields is set, that line's
// FieldRecords. An empty pattern selects every line.
func Search(input []byte, opts Options) ([]MatchRecord, []FieldRecord, error) {
	return dispatch.Search(input, opts)
}

// Substitute replaces every non-overlapping match of opts.Pattern in input
// with replacement, or only the first when opts.GlobalSubstitution is
// false, always on the CPU path. It returns the rewritten buffer and one
// SubstitutionRecord per replacement made.
func Substitute(input []byte, opts Options, replacement []byte) ([]byte, []SubstitutionRecord, error) {
	return dispatch.Substitute(input, opts, replacement)
}
