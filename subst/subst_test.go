package subst

import "testing"

type fixedMatcher struct {
	needle []byte
}

func (m fixedMatcher) Find(haystack []byte, from int) (int, int, bool) {
	for i := from; i+len(m.needle) <= len(haystack); i++ {
		match := true
		for j := range m.needle {
			if haystack[i+j] != m.needle[j] {
				match = false
				break
			}
		}
		if match {
			return i, i + len(m.needle), true
		}
	}
	return 0, 0, false
}

func TestApply_GlobalReplacesAllNonOverlapping(t *testing.T) {
	out, records := Apply([]byte("foo bar foo baz foo"), fixedMatcher{[]byte("foo")}, []byte("XX"), true)
	if string(out) != "XX bar XX baz XX" {
		t.Fatalf("got %q", out)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Position != 0 || records[0].MatchLen != 3 {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
}

func TestApply_FirstMatchOnly(t *testing.T) {
	out, records := Apply([]byte("foo foo foo"), fixedMatcher{[]byte("foo")}, []byte("bar"), false)
	if string(out) != "bar foo foo" {
		t.Fatalf("got %q", out)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestApply_NoMatch(t *testing.T) {
	out, records := Apply([]byte("hello"), fixedMatcher{[]byte("xyz")}, []byte("Z"), true)
	if string(out) != "hello" || len(records) != 0 {
		t.Fatalf("expected unmodified copy, got %q %v", out, records)
	}
}

func TestApply_LineNumTracking(t *testing.T) {
	input := []byte("aaa\nbbb foo\nfoo ccc")
	_, records := Apply(input, fixedMatcher{[]byte("foo")}, []byte("X"), true)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].LineNum != 1 {
		t.Fatalf("expected first match on line 1, got %d", records[0].LineNum)
	}
	if records[1].LineNum != 2 {
		t.Fatalf("expected second match on line 2, got %d", records[1].LineNum)
	}
}

func TestApply_OutputLengthInvariant(t *testing.T) {
	input := []byte("a-b-c-d")
	out, records := Apply(input, fixedMatcher{[]byte("-")}, []byte("::"), true)
	wantLen := len(input) - len(records)*1 + len(records)*2
	if len(out) != wantLen {
		t.Fatalf("got len %d, want %d", len(out), wantLen)
	}
}
