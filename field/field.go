// Package field splits a line into fields under the three separator modes
// an AWK-style field splitter supports: collapsing whitespace, a single
// separator byte, and a multi-byte separator string.
package field

import (
	"github.com/vecgrep/vecgrep/internal/conv"
	"github.com/vecgrep/vecgrep/simd"
)

// Record is one field within a line, both offsets relative to the line's own
// start (not the whole input buffer).
type Record struct {
	StartOffset uint32
	EndOffset   uint32
}

const windowSize = 32

// Split appends one Record per field of line to fields and returns the
// updated slice along with the field count. sep selects the mode:
//   - nil or empty: whitespace mode, runs of space/tab collapse and leading
//     or trailing whitespace produce no empty fields.
//   - a single byte: that byte divides the line; consecutive separators (and
//     a leading or trailing separator) produce empty fields.
//   - more than one byte: matched as an exact substring; same empty-field
//     behaviour as single-byte mode.
func Split(fields []Record, line []byte, sep []byte) ([]Record, uint32) {
	switch len(sep) {
	case 0:
		return splitWhitespace(fields, line)
	case 1:
		return splitSingleByte(fields, line, sep[0])
	default:
		return splitMultiByte(fields, line, sep)
	}
}

func splitWhitespace(fields []Record, line []byte) ([]Record, uint32) {
	var count uint32
	i := 0
	n := len(line)
	for i < n {
		for i < n && simd.IsWhitespaceDefault(line[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		for i < n {
			if n-i >= windowSize && !simd.HasWhitespaceWindow(line[i:i+windowSize]) {
				i += windowSize
				continue
			}
			if simd.IsWhitespaceDefault(line[i]) {
				break
			}
			i++
		}
		fields = append(fields, Record{StartOffset: conv.IntToUint32(start), EndOffset: conv.IntToUint32(i)})
		count++
	}
	return fields, count
}

// splitSingleByte allows zero-length fields: invariant 3 (start < end) is
// relaxed here, matching the AWK convention that a run of separators yields
// empty fields rather than collapsing them.
func splitSingleByte(fields []Record, line []byte, sep byte) ([]Record, uint32) {
	var count uint32
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] == sep {
			fields = append(fields, Record{StartOffset: conv.IntToUint32(start), EndOffset: conv.IntToUint32(i)})
			count++
			start = i + 1
		}
	}
	fields = append(fields, Record{StartOffset: conv.IntToUint32(start), EndOffset: conv.IntToUint32(len(line))})
	count++
	return fields, count
}

func splitMultiByte(fields []Record, line []byte, sep []byte) ([]Record, uint32) {
	var count uint32
	start := 0
	for i := 0; i+len(sep) <= len(line); {
		if matchesAt(line, i, sep) {
			fields = append(fields, Record{StartOffset: conv.IntToUint32(start), EndOffset: conv.IntToUint32(i)})
			count++
			i += len(sep)
			start = i
			continue
		}
		i++
	}
	fields = append(fields, Record{StartOffset: conv.IntToUint32(start), EndOffset: conv.IntToUint32(len(line))})
	count++
	return fields, count
}

func matchesAt(line []byte, at int, sep []byte) bool {
	for j := 0; j < len(sep); j++ {
		if line[at+j] != sep[j] {
			return false
		}
	}
	return true
}
