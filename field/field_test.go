package field

import "testing"

func strs(line []byte, recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = string(line[r.StartOffset:r.EndOffset])
	}
	return out
}

func TestSplit_Whitespace(t *testing.T) {
	line := []byte("  the  quick brown\tfox  ")
	recs, count := Split(nil, line, nil)
	if count != 4 {
		t.Fatalf("got %d fields, want 4", count)
	}
	got := strs(line, recs)
	want := []string{"the", "quick", "brown", "fox"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSplit_WhitespaceLongField(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'x'
	}
	line := append(append([]byte("a "), long...), []byte(" b")...)
	recs, count := Split(nil, line, nil)
	if count != 3 {
		t.Fatalf("got %d fields, want 3", count)
	}
	if string(line[recs[1].StartOffset:recs[1].EndOffset]) != string(long) {
		t.Fatal("long field spanning multiple 32-byte windows was split incorrectly")
	}
}

func TestSplit_SingleByteEmptyFields(t *testing.T) {
	line := []byte(",a,,b,")
	recs, count := Split(nil, line, []byte{','})
	if count != 5 {
		t.Fatalf("got %d fields, want 5", count)
	}
	got := strs(line, recs)
	want := []string{"", "a", "", "b", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSplit_MultiByte(t *testing.T) {
	line := []byte("a::b::::c")
	recs, count := Split(nil, line, []byte("::"))
	if count != 4 {
		t.Fatalf("got %d fields, want 4", count)
	}
	got := strs(line, recs)
	want := []string{"a", "b", "", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSplit_EmptyLine(t *testing.T) {
	recs, count := Split(nil, []byte{}, nil)
	if count != 0 || len(recs) != 0 {
		t.Fatalf("expected no fields for an empty line, got %d", count)
	}
}

func TestSplit_SingleByteNoSeparator(t *testing.T) {
	recs, count := Split(nil, []byte("abc"), []byte{','})
	if count != 1 || string([]byte("abc")[recs[0].StartOffset:recs[0].EndOffset]) != "abc" {
		t.Fatalf("expected whole line as one field, got %d fields", count)
	}
}
