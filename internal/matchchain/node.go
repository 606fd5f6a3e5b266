package matchchain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// literalUpperCaser performs the full (possibly length-changing) Unicode
// uppercasing used for IGNORE_CASE literal folding. strings.ToUpper only
// applies Go's simple, non-context-aware case mapping; cases.Upper applies
// the full mapping golang.org/x/text provides.
var literalUpperCaser = cases.Upper(language.Und) //nolint:gochecknoglobals // immutable, stateless caser.

// Node is the closed, tagged-variant matcher interface. Every implementation
// consumes zero or more leading runes of remaining consistent with its kind
// and delegates the tail to its successor; it returns true iff that chain
// ultimately reaches endNode with an empty remainder.
type Node interface {
	tryMatch(remaining string) bool
}

// endNode is the terminal matcher: the root of the (conceptually) reversed
// chain and the only node with no successor.
type endNode struct{}

func (endNode) tryMatch(remaining string) bool {
	return remaining == ""
}

// literalNode matches a non-empty literal run verbatim, or, when folded is
// non-empty, case-insensitively via a precomputed full-Unicode uppercase
// form.
type literalNode struct {
	next   Node
	literal string
	// folded is the full-Unicode-uppercased form of literal, computed once
	// at compile time. It is empty when IGNORE_CASE was not requested, or
	// when uppercasing literal would change its byte length (see
	// newLiteralNode) — in the latter case this node silently degrades to
	// byte-exact matching only, which is the documented, spec-sanctioned
	// resolution of the literal-advance ambiguity.
	folded string
}

// newLiteralNode precomputes the folded form of literal when ignoreCase is
// set, refusing to fold (leaving folded empty) if doing so would change the
// literal's byte length — see spec's Open Question on Unicode uppercasing
// changing byte width (e.g. the 3-byte "ﬁ" -> the 2-byte "FI").
func newLiteralNode(next Node, literal string, ignoreCase bool) *literalNode {
	n := &literalNode{next: next, literal: literal}

	if ignoreCase {
		upper := literalUpperCaser.String(literal)
		if len(upper) == len(literal) {
			n.folded = upper
		}
	}

	return n
}

func (n *literalNode) tryMatch(remaining string) bool {
	if strings.HasPrefix(remaining, n.literal) {
		return n.next.tryMatch(remaining[len(n.literal):])
	}

	if n.folded != "" && len(remaining) >= len(n.folded) {
		candidate := literalUpperCaser.String(remaining[:len(n.folded)])
		if candidate == n.folded {
			return n.next.tryMatch(remaining[len(n.literal):])
		}
	}

	return false
}

// rangeNode matches a single rune present in its character set.
type rangeNode struct {
	next Node
	set  *charSet
}

func (n *rangeNode) tryMatch(remaining string) bool {
	if remaining == "" {
		return false
	}

	r, size := utf8.DecodeRuneInString(remaining)
	if !n.set.Contains(r) {
		return false
	}

	return n.next.tryMatch(remaining[size:])
}

// notRangeNode matches a single rune absent from its character set.
type notRangeNode struct {
	next Node
	set  *charSet
}

func (n *notRangeNode) tryMatch(remaining string) bool {
	if remaining == "" {
		return false
	}

	r, size := utf8.DecodeRuneInString(remaining)
	if n.set.Contains(r) {
		return false
	}

	return n.next.tryMatch(remaining[size:])
}

// wild1Node ("?") matches exactly one rune, of any value.
type wild1Node struct {
	next Node
}

func (n *wild1Node) tryMatch(remaining string) bool {
	if remaining == "" {
		return false
	}

	_, size := utf8.DecodeRuneInString(remaining)

	return n.next.tryMatch(remaining[size:])
}

// wildNNode ("*") matches zero or more runes via backtracking search: it
// tries its successor against every rune-boundary suffix of remaining, in
// order of increasing consumed prefix length (leftmost-shortest), returning
// true on the first success.
type wildNNode struct {
	next Node
}

func (n *wildNNode) tryMatch(remaining string) bool {
	pos := 0

	for {
		if n.next.tryMatch(remaining[pos:]) {
			return true
		}

		if pos == len(remaining) {
			return false
		}

		_, size := utf8.DecodeRuneInString(remaining[pos:])
		pos += size
	}
}
