package wildmatch_test

import (
	"testing"

	"github.com/gowildcard/wildmatch"
)

func TestMatchAny(t *testing.T) {
	t.Parallel()

	results, err := wildmatch.MatchAny([]string{"foo*", "Foo*", "baz[a-z]"}, 0, "foobar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []bool{true, false, false}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("results[%d] = %v, want %v", i, results[i], want[i])
		}
	}
}

func TestMatchAnyPropagatesCompileError(t *testing.T) {
	t.Parallel()

	if _, err := wildmatch.MatchAny([]string{"foo*", "[a-9]"}, 0, "foobar"); err == nil {
		t.Fatal("expected a parse error to propagate")
	}
}

func TestMatchAll(t *testing.T) {
	t.Parallel()

	results, err := wildmatch.MatchAll("*.txt", 0, []string{"a.txt", "b.txt", "b.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []bool{true, true, false}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("results[%d] = %v, want %v", i, results[i], want[i])
		}
	}
}

func TestMatchAllPropagatesCompileError(t *testing.T) {
	t.Parallel()

	if _, err := wildmatch.MatchAll("[a-9]", 0, []string{"x"}); err == nil {
		t.Fatal("expected a parse error")
	}
}
