// Package simd provides vectorised-equivalent byte-scan primitives for the
// vecgrep matching core: newline discovery, ASCII case folding, and
// separator-byte detection.
//
// FindNextNewline and HasWhitespaceWindow use a SWAR (SIMD-within-a-register)
// path that tests 8 bytes at a time with uint64 bitwise tricks, followed by a
// scalar tail; ToLowerLane walks 8-byte words, and IsSeparator is a plain
// scalar loop. The word-at-a-time paths are a pure acceleration: they always
// agree with a scalar loop, byte for byte. A capability probe
// (golang.org/x/sys/cpu) records whether the host has wide vector units
// available; this is informational only in the current build (see DESIGN.md
// for why no hand-written assembly ships) and no code path reads it.
package simd

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// HasWideVectorUnit reports whether the host CPU exposes AVX2, the same
// capability coregex's amd64 memchr kernel gates on. vecgrep does not ship
// assembly for this build (see DESIGN.md), but the probe is kept so the SWAR
// fast path below occupies the same call site a real vector kernel would.
var HasWideVectorUnit = cpu.X86.HasAVX2

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// FindNextNewline returns the index of the first '\n' in input at or after
// start, or len(input) if none is found. The search is byte-exact; the SWAR
// loop below is an acceleration over the trailing scalar scan, never a
// source of imprecision.
func FindNextNewline(input []byte, start int) int {
	if start >= len(input) {
		return len(input)
	}
	rel := findByteSWAR(input[start:], '\n')
	if rel < 0 {
		return len(input)
	}
	return start + rel
}

// findByteSWAR returns the index of the first occurrence of b in buf, or -1.
// It processes 8-byte words using the classic Hacker's Delight zero-byte
// detection formula, falling back to a scalar loop for the final <8 bytes
// and for inputs too short to amortize the word-at-a-time setup.
func findByteSWAR(buf []byte, b byte) int {
	n := len(buf)
	if n < 8 {
		for i := 0; i < n; i++ {
			if buf[i] == b {
				return i
			}
		}
		return -1
	}

	mask := uint64(b) * lo8
	i := 0
	for i+8 <= n {
		word := binary.LittleEndian.Uint64(buf[i:])
		xor := word ^ mask
		hasZero := (xor - lo8) &^ xor & hi8
		if hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		if buf[i] == b {
			return i
		}
	}
	return -1
}

// ToLowerLane folds every byte in lane that lies in [A-Z] to its lowercase
// equivalent (+32), leaving all other bytes unchanged. It mutates lane in
// place and also returns it for chaining.
//
// This is applied on the fly during literal matching (one side of the
// comparison window) and once, up front, over the pattern bytes when
// case-insensitive matching is requested.
func ToLowerLane(lane []byte) []byte {
	i := 0
	for ; i+8 <= len(lane); i += 8 {
		word := binary.LittleEndian.Uint64(lane[i:])
		word = lowerWord(word)
		binary.LittleEndian.PutUint64(lane[i:], word)
	}
	for ; i < len(lane); i++ {
		lane[i] = toLowerByte(lane[i])
	}
	return lane
}

// lowerWord applies toLowerByte to each of the 8 bytes packed in word.
func lowerWord(word uint64) uint64 {
	var result uint64
	for shift := 0; shift < 64; shift += 8 {
		b := byte(word >> shift)
		result |= uint64(toLowerByte(b)) << shift
	}
	return result
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

// spaceBroadcast and tabBroadcast broadcast ' ' and '\t' into every byte of a
// uint64 word, used by HasWhitespaceWindow's vectorised pre-check.
var (
	spaceBroadcast = uint64(' ') * lo8
	tabBroadcast   = uint64('\t') * lo8
)

// IsSeparator reports whether b equals any byte in sep.
//
// When sep is exactly {' ', '\t'} (the AWK default whitespace separator),
// callers scanning a run of bytes should prefer HasWhitespaceWindow for the
// vectorised 32-byte pre-check described in spec §4.A; IsSeparator itself
// stays a simple scalar membership test for arbitrary separator sets.
func IsSeparator(b byte, sep []byte) bool {
	for _, s := range sep {
		if b == s {
			return true
		}
	}
	return false
}

// IsWhitespaceDefault reports whether b is the AWK default field-separator
// whitespace (space or tab).
func IsWhitespaceDefault(b byte) bool {
	return b == ' ' || b == '\t'
}

// HasWhitespaceWindow scans a 32-byte (or shorter) window and reports
// whether any byte is a space or tab. It is used as a fast pre-check before
// falling back to a byte-by-byte scan for exact transition positions: if the
// window contains no whitespace, the entire window belongs to the current
// field and the caller can skip straight past it.
func HasWhitespaceWindow(window []byte) bool {
	i := 0
	for ; i+8 <= len(window); i += 8 {
		word := binary.LittleEndian.Uint64(window[i:])
		if hasByteWord(word, spaceBroadcast) != 0 || hasByteWord(word, tabBroadcast) != 0 {
			return true
		}
	}
	for ; i < len(window); i++ {
		if IsWhitespaceDefault(window[i]) {
			return true
		}
	}
	return false
}

// hasByteWord returns a non-zero value iff one of the 8 bytes packed in word
// equals the byte broadcast in mask (itself produced as byte*lo8).
func hasByteWord(word, mask uint64) uint64 {
	xor := word ^ mask
	return (xor - lo8) &^ xor & hi8
}
