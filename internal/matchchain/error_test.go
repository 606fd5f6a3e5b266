package matchchain

import "testing"

func TestParseErrorRendersLineAndColumn(t *testing.T) {
	t.Parallel()

	err := newParseError(0, 3, "bad continuum")

	want := "pattern syntax error (at 0:3): bad continuum"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseErrorOmitsColumnWhenNoColumn(t *testing.T) {
	t.Parallel()

	err := newParseError(0, NoColumn, "generic failure")

	if got := err.Error(); got != "generic failure" {
		t.Errorf("Error() = %q, want %q", got, "generic failure")
	}
}
