package matchchain

import "testing"

func TestCharSetDenseRange(t *testing.T) {
	t.Parallel()

	cs := buildCharSet([]rune{'a', 'b', 'c'}, false)

	for _, r := range []rune{'a', 'b', 'c'} {
		if !cs.Contains(r) {
			t.Errorf("expected set to contain %q", r)
		}
	}

	if cs.Contains('d') {
		t.Error("did not expect set to contain 'd'")
	}
}

func TestCharSetIgnoreCaseAugmentsASCIIOnly(t *testing.T) {
	t.Parallel()

	cs := buildCharSet([]rune{'a', '9'}, true)

	if !cs.Contains('a') || !cs.Contains('A') {
		t.Error("expected IGNORE_CASE to add both cases of an ASCII letter")
	}

	if !cs.Contains('9') {
		t.Error("expected a non-letter member to survive unchanged")
	}
}

func TestCharSetHighCodePoints(t *testing.T) {
	t.Parallel()

	cs := buildCharSet([]rune{'🐼', '🐻', 'a'}, false)

	if !cs.Contains('🐼') || !cs.Contains('🐻') {
		t.Error("expected both high code points to be members")
	}

	if cs.Contains('🦊') {
		t.Error("did not expect an unrelated high code point to be a member")
	}

	if !cs.Contains('a') {
		t.Error("expected the dense-range member to remain a member")
	}
}

func TestCharSetHighCodePointsDeduplicate(t *testing.T) {
	t.Parallel()

	cs := buildCharSet([]rune{'🐼', '🐼', '🐻'}, false)

	if len(cs.high) != 2 {
		t.Errorf("len(high) = %d, want 2 after deduplication", len(cs.high))
	}
}
