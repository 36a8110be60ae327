package dispatch

import (
	"reflect"
	"testing"
)

func TestSearch_Literal(t *testing.T) {
	matches, _, err := Search([]byte("alpha\nbeta\ngamma\n"), Options{Pattern: []byte("eta")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].LineNum != 1 {
		t.Fatalf("got %+v, want a single match on line 1", matches)
	}
}

func TestSearch_Regex(t *testing.T) {
	matches, _, err := Search([]byte("foo123\nbar\nbaz456\n"), Options{Pattern: []byte(`[0-9]+`)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
}

func TestSearch_AlternationPrefilter(t *testing.T) {
	matches, _, err := Search([]byte("system ok\nfatal error\nall good\n"), Options{Pattern: []byte("error|fatal|panic")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].LineNum != 1 {
		t.Fatalf("got %+v, want a single match on line 1", matches)
	}
}

func TestSearch_InvertMatch(t *testing.T) {
	opts := Options{Pattern: []byte("foo")}
	opts.InvertMatch = true
	matches, _, err := Search([]byte("foo\nbar\nfoobar\n"), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].LineNum != 1 {
		t.Fatalf("got %+v, want only 'bar'", matches)
	}
}

func TestSearch_FieldSplitting(t *testing.T) {
	opts := Options{Pattern: []byte("b")}
	opts.SplitFields = true
	matches, fields, err := Search([]byte("a b\nx y z\n"), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].FieldCount != 2 {
		t.Fatalf("got %+v", matches)
	}
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
}

func TestSearch_ExplicitGPUBackendForSmallInput(t *testing.T) {
	opts := Options{Pattern: []byte("needle")}
	opts.Backend = GPU
	matches, _, err := Search([]byte("needle in a haystack\nno match here\n"), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].LineNum != 0 {
		t.Fatalf("got %+v", matches)
	}
}

func TestSubstitute_Global(t *testing.T) {
	opts := Options{Pattern: []byte("cat")}
	opts.GlobalSubstitution = true
	out, records, err := Substitute([]byte("cat and cat"), opts, []byte("dog"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "dog and dog" {
		t.Fatalf("got %q", out)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestSubstitute_EmptyPatternNoOp(t *testing.T) {
	out, records, err := Substitute([]byte("unchanged"), Options{}, []byte("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "unchanged" || records != nil {
		t.Fatalf("expected no-op for empty pattern, got %q %v", out, records)
	}
}

// TestSearch_CPUGPUParity runs the same input and pattern through both
// backends explicitly and requires identical MatchRecord and FieldRecord
// output after gpu.Dispatch's LineNum sort, since the simulated kernel and
// the line engine must agree on every line regardless of which one ran it.
func TestSearch_CPUGPUParity(t *testing.T) {
	input := []byte("alpha 1\nbeta 22\nno match\ngamma 333\ndelta 4444\n")
	for _, tc := range []struct {
		name    string
		pattern string
	}{
		{"literal", "beta"},
		{"regex", `[0-9]+`},
		{"alternation", "alpha|gamma|delta"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{Pattern: []byte(tc.pattern)}
			opts.SplitFields = true

			cpuOpts := opts
			cpuOpts.Backend = CPU
			cpuMatches, cpuFields, err := Search(input, cpuOpts)
			if err != nil {
				t.Fatalf("cpu: unexpected error: %v", err)
			}

			gpuOpts := opts
			gpuOpts.Backend = GPU
			gpuMatches, gpuFields, err := Search(input, gpuOpts)
			if err != nil {
				t.Fatalf("gpu: unexpected error: %v", err)
			}

			if !reflect.DeepEqual(cpuMatches, gpuMatches) {
				t.Fatalf("CPU/GPU match mismatch:\ncpu=%+v\ngpu=%+v", cpuMatches, gpuMatches)
			}
			if !reflect.DeepEqual(cpuFields, gpuFields) {
				t.Fatalf("CPU/GPU field mismatch:\ncpu=%+v\ngpu=%+v", cpuFields, gpuFields)
			}
		})
	}
}

func TestBackendString(t *testing.T) {
	if Auto.String() != "auto" || CPU.String() != "cpu" || GPU.String() != "gpu" {
		t.Fatal("unexpected Backend.String() values")
	}
}
