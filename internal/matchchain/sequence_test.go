package matchchain

import "testing"

func TestSequencePrependBuildsHeadFirstChain(t *testing.T) {
	t.Parallel()

	seq := NewSequence()

	mr := seq.PrependWild1(0)
	mr = seq.PrependLiteral("ab", false, mr)

	if seq.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", seq.Len())
	}

	if mr != 3 {
		t.Fatalf("minimum required = %d, want 3", mr)
	}

	if !seq.Matches("abx") {
		t.Error("expected \"ab\" + wild1 to match \"abx\"")
	}

	if seq.Matches("ab") {
		t.Error("wild1 requires exactly one trailing scalar")
	}
}

func TestSequenceWildNContributesNoMinimumRequired(t *testing.T) {
	t.Parallel()

	seq := NewSequence()
	mr := seq.PrependWildN(5)

	if mr != 5 {
		t.Errorf("minimum required = %d, want 5 (WildN contributes 0)", mr)
	}
}

func TestEmptySequenceMatchesOnlyEmptyInput(t *testing.T) {
	t.Parallel()

	seq := NewSequence()

	if !seq.Matches("") {
		t.Error("expected a bare end-node sequence to match empty input")
	}

	if seq.Matches("x") {
		t.Error("did not expect a bare end-node sequence to match non-empty input")
	}
}
