package prefilter

import "testing"

func TestBuild_AlternationMatches(t *testing.T) {
	pf, ok := Build([]byte("error|warning|fatal"))
	if !ok {
		t.Fatal("expected a prefilter to be built for a literal alternation")
	}
	if !pf.IsMatch([]byte("system reported a fatal error")) {
		t.Fatal("expected match")
	}
	if pf.IsMatch([]byte("all systems nominal")) {
		t.Fatal("did not expect a match")
	}
}

func TestBuild_Find(t *testing.T) {
	pf, ok := Build([]byte("cat|dog"))
	if !ok {
		t.Fatal("expected a prefilter to be built")
	}
	start, end, found := pf.Find([]byte("I have a dog"), 0)
	if !found || start != 9 || end != 12 {
		t.Fatalf("got (%d,%d,%v), want (9,12,true)", start, end, found)
	}
}

func TestBuild_RejectsNonAlternation(t *testing.T) {
	if _, ok := Build([]byte("a.*b")); ok {
		t.Fatal("did not expect a prefilter for a non-literal-alternation pattern")
	}
	if _, ok := Build([]byte("onlyliteral")); ok {
		t.Fatal("a single literal (no alternation) should not need a prefilter")
	}
}
