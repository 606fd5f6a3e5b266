package matchchain_test

import (
	"strings"
	"testing"

	"github.com/gowildcard/wildmatch/internal/matchchain"
)

func mustCompile(t *testing.T, pattern string, flags int) *matchchain.Sequence {
	t.Helper()

	seq, err := matchchain.Compile(pattern, flags)
	if err != nil {
		t.Fatalf("Compile(%q): unexpected error: %v", pattern, err)
	}

	return seq
}

func TestCompileShapeMatchesReferenceLengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    int
	}{
		{"abcd", 1},
		{"a*c?", 4},
		{"*", 1},
		{"?", 1},
		{"", 0},
		{"a[bc]d", 3},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			seq := mustCompile(t, tt.pattern, 0)
			if got := seq.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompileAndMatchScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		flags   int
		input   string
		want    bool
	}{
		{"literal exact", "abcd", 0, "abcd", true},
		{"literal case sensitive", "abcd", 0, "ABCD", false},
		{"literal ignore case", "abcd", matchchain.IgnoreCase, "ABCD", true},
		{"wildn backtrack then wild1", "a*c?", 0, "abbbbbbbbcd", true},
		{"positive then negative range", "a[b-c]c[^d-m]", 0, "abcn", true},
		{"mismatched case continuum", "a[b-C]c[m-D]", 0, "aCcJ", true},
		{"reversed continuum", "[c-a]", 0, "b", true},
		{"leading hyphen literal", "[-ab]", 0, "-", true},
		{"trailing hyphen literal", "[ab-]", 0, "-", true},
		{"escaped wildn", `\*`, 0, "*", true},
		{"escaped wildn rejects wildcard behavior", `\*`, 0, "x", false},
		{"escaped newline", "a\\nb", 0, "a\nb", true},
		{"empty pattern matches empty", "", 0, "", true},
		{"empty pattern rejects nonempty", "", 0, "x", false},
		{"bare wildn matches empty", "*", 0, "", true},
		{"bare wild1 rejects empty", "?", 0, "", false},
		{"wild1 counts runes not bytes", "?", 0, "🎉", true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seq := mustCompile(t, tt.pattern, tt.flags)
			if got := seq.Matches(tt.input); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		pattern       string
		wantLine      int
		wantColumn    int
		wantContains  string
	}{
		{"malformed continuum", "[a-9]", 0, 3, "does not define a supported (ASCII) range continuum"},
		{"incomplete range", "[a-z", 0, 4, "incomplete range"},
		{"trailing slash", `abcd\`, 0, 5, "trailing slash"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := matchchain.Compile(tt.pattern, 0)
			if err == nil {
				t.Fatalf("Compile(%q): expected an error", tt.pattern)
			}

			perr, ok := err.(*matchchain.ParseError) //nolint:errorlint // asserting the concrete compiler error type.
			if !ok {
				t.Fatalf("Compile(%q): error is %T, want *ParseError", tt.pattern, err)
			}

			if perr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", perr.Line, tt.wantLine)
			}

			if perr.Column != tt.wantColumn {
				t.Errorf("Column = %d, want %d", perr.Column, tt.wantColumn)
			}

			if !strings.Contains(perr.Error(), tt.wantContains) {
				t.Errorf("Error() = %q, want substring %q", perr.Error(), tt.wantContains)
			}
		})
	}
}

func TestCompileWindowsPathPattern(t *testing.T) {
	t.Parallel()

	seq := mustCompile(t, `[A-Z]:\\?*\\?*.[ce][ox][em]`, 0)

	if !seq.Matches(`C:\directory\file.exe`) {
		t.Fatal("expected the compiled pattern to match the sample Windows path")
	}

	if seq.Matches(`c:\directory\file.exe`) {
		t.Fatal("pattern is case-sensitive by default; lowercase drive letter must not match")
	}
}

func TestCompileMultiScalarBacktracking(t *testing.T) {
	t.Parallel()

	seq := mustCompile(t, `Where are the* [🐼🐻]s\?`, 0)

	if !seq.Matches("Where are the 🐻s?") {
		t.Fatal("expected WildN to backtrack across multi-byte scalars and match")
	}
}

func TestCompileUnicodeLineCounting(t *testing.T) {
	t.Parallel()

	_, err := matchchain.Compile("ab\n[z-", 0)
	if err == nil {
		t.Fatal("expected an incomplete-range error")
	}

	perr, ok := err.(*matchchain.ParseError) //nolint:errorlint // asserting the concrete compiler error type.
	if !ok {
		t.Fatalf("error is %T, want *ParseError", err)
	}

	if perr.Line != 1 {
		t.Errorf("Line = %d, want 1 (pattern contains one newline before the class)", perr.Line)
	}
}
