package literal

import "testing"

func TestExtractAlternationSeq_PureLiterals(t *testing.T) {
	seq, ok := ExtractAlternationSeq([]byte("error|warning|fatal"))
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if seq.Len() != 3 {
		t.Fatalf("expected 3 literals, got %d", seq.Len())
	}
	want := map[string]bool{"error": true, "warning": true, "fatal": true}
	for i := 0; i < seq.Len(); i++ {
		if !want[string(seq.Get(i).Bytes)] {
			t.Errorf("unexpected literal %q", seq.Get(i).Bytes)
		}
		if !seq.Get(i).Complete {
			t.Error("expected alternation literal to be marked complete")
		}
	}
}

func TestExtractAlternationSeq_SingleLiteral(t *testing.T) {
	seq, ok := ExtractAlternationSeq([]byte("hello"))
	if !ok || seq.Len() != 1 || string(seq.Get(0).Bytes) != "hello" {
		t.Fatalf("expected single literal 'hello', got ok=%v seq=%v", ok, seq)
	}
}

func TestExtractAlternationSeq_RejectsRegexBranch(t *testing.T) {
	if _, ok := ExtractAlternationSeq([]byte("error|warn.*")); ok {
		t.Fatal("expected extraction to fail when a branch contains regex syntax")
	}
}

func TestExtractAlternationSeq_RejectsInvalidPattern(t *testing.T) {
	if _, ok := ExtractAlternationSeq([]byte("(unterminated")); ok {
		t.Fatal("expected extraction to fail on unparseable pattern")
	}
}
