// Package matchchain implements the compiled matcher chain that backs the
// wildmatch package: a character-class builder, the five matcher node
// kinds, the owned matcher sequence, and the pattern compiler.
package matchchain

import (
	"fmt"
	"math"
)

// NoColumn is the sentinel column value for errors that have no single
// offending column (currently unused by any compiler path, but kept so
// callers constructing a ParseError by hand have a documented sentinel).
const NoColumn = math.MaxInt

// ParseError reports a syntax error encountered while compiling a pattern.
// Line and Column are zero-based; Column may be NoColumn, in which case it
// is omitted from the rendered message.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

// Error renders the error as "pattern syntax error (at L:C): message", or
// just "message" when Column is the NoColumn sentinel.
func (e *ParseError) Error() string {
	if e.Column == NoColumn {
		return e.Message
	}

	return fmt.Sprintf("pattern syntax error (at %d:%d): %s", e.Line, e.Column, e.Message)
}

// newParseError is a small constructor used throughout the compiler so call
// sites read as a single expression rather than a struct literal.
func newParseError(line, column int, message string) *ParseError {
	return &ParseError{Line: line, Column: column, Message: message}
}
