package matchchain

import (
	"fmt"
	"unicode/utf8"
)

// IgnoreCase is the one recognized compilation flag: it asks the compiler
// to fold ASCII letters (in character classes) and full Unicode case (in
// literals) during matching. All other bits are reserved and ignored.
const IgnoreCase = 0x0200

// parseState is the tokenizer's current mode, per spec: outside any
// construct, accumulating a literal run, or inside a positive/negative
// character class.
type parseState int

const (
	stateNone parseState = iota
	stateInLiteral
	stateInRange
	stateInNotRange
)

// position is a zero-based line/column pair tracked through compilation so
// that every ParseError — including ones raised from deep inside a
// recursive continuation — carries a position relative to the whole
// pattern, never to a recursed-into suffix.
type position struct {
	line   int
	column int
}

func (p position) advance(r rune) position {
	if r == '\n' {
		return position{line: p.line + 1, column: 0}
	}

	return position{line: p.line, column: p.column + 1}
}

// Compile tokenizes pattern and builds the matcher chain it denotes,
// returning a syntax error if pattern is malformed. The grammar, tokenizer
// rules, and error conditions are exactly those laid out in the package's
// specification; see compileFrom for the implementation.
func Compile(pattern string, flags int) (*Sequence, error) {
	seq := NewSequence()
	ignoreCase := flags&IgnoreCase != 0

	if _, err := compileFrom(seq, pattern, 0, ignoreCase, position{}); err != nil {
		return nil, err
	}

	return seq, nil
}

// compileFrom performs a single forward scan of pattern starting at byte
// offset with pos the position of that offset, emitting matchers into seq
// as it recognizes complete elements. It returns the minimum input length
// the resulting (sub)chain requires to match (each literal counts its byte
// length, each "?" or class counts 1, "*" counts 0), a value reserved
// for future short-circuit optimization and not otherwise consulted here.
//
// The scan is a right-fold realized via recursion: whenever a complete
// element (literal run, class, "?", "*") is recognized, this function
// recurses on whatever of the pattern remains, then prepends its own
// element in front of the chain the recursive call produced — so the
// overall chain ends up in source order even though construction proceeds
// back-to-front. A literal run that is interrupted by a special character
// recurses starting AT that character (reprocessing it fresh, under
// state none) rather than past it, since the special character has not
// yet been consumed; a special character recognized directly (state none)
// recurses past itself, since it has.
func compileFrom(seq *Sequence, pattern string, offset int, ignoreCase bool, pos position) (int, error) {
	var (
		state              = stateNone
		buf                []rune
		escaped            bool
		continuumPrior     rune
		haveContinuumPrior bool
		i                  = offset
		cur                = pos
	)

	for i < len(pattern) {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		skipIdx := i + size
		afterSkip := cur.advance(r)

		if escaped {
			switch r {
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case 't':
				buf = append(buf, '\t')
			default:
				buf = append(buf, r)
			}

			escaped = false
			if state == stateNone {
				state = stateInLiteral
			}

			i, cur = skipIdx, afterSkip

			continue
		}

		switch r {
		case '[':
			switch state {
			case stateNone:
				state = stateInRange
				i, cur = skipIdx, afterSkip

				continue
			case stateInLiteral:
				literal := string(buf)

				followingMR, err := compileFrom(seq, pattern, i, ignoreCase, cur)
				if err != nil {
					return 0, err
				}

				return seq.PrependLiteral(literal, ignoreCase, followingMR), nil
			default:
				buf = append(buf, r)
				i, cur = skipIdx, afterSkip

				continue
			}

		case '^':
			if state == stateInRange && len(buf) == 0 {
				state = stateInNotRange
			} else {
				buf = append(buf, r)
				if state == stateNone {
					state = stateInLiteral
				}
			}

			i, cur = skipIdx, afterSkip

			continue

		case ']':
			switch state {
			case stateInRange, stateInNotRange:
				if haveContinuumPrior {
					buf = append(buf, '-')
				}

				set := buildCharSet(buf, ignoreCase)

				followingMR, err := compileFrom(seq, pattern, skipIdx, ignoreCase, afterSkip)
				if err != nil {
					return 0, err
				}

				if state == stateInRange {
					return seq.PrependRange(set, followingMR), nil
				}

				return seq.PrependNotRange(set, followingMR), nil
			default:
				buf = append(buf, r)
				state = stateInLiteral
				i, cur = skipIdx, afterSkip

				continue
			}

		case '\\':
			escaped = true
			i, cur = skipIdx, afterSkip

			continue

		case '-':
			if (state == stateInRange || state == stateInNotRange) && len(buf) > 0 {
				continuumPrior = buf[len(buf)-1]
				haveContinuumPrior = true
			} else {
				buf = append(buf, r)
				if state == stateNone {
					state = stateInLiteral
				}
			}

			i, cur = skipIdx, afterSkip

			continue

		case '?':
			switch state {
			case stateNone:
				followingMR, err := compileFrom(seq, pattern, skipIdx, ignoreCase, afterSkip)
				if err != nil {
					return 0, err
				}

				return seq.PrependWild1(followingMR), nil
			case stateInLiteral:
				literal := string(buf)

				followingMR, err := compileFrom(seq, pattern, i, ignoreCase, cur)
				if err != nil {
					return 0, err
				}

				return seq.PrependLiteral(literal, ignoreCase, followingMR), nil
			default:
				buf = append(buf, r)
				i, cur = skipIdx, afterSkip

				continue
			}

		case '*':
			switch state {
			case stateNone:
				followingMR, err := compileFrom(seq, pattern, skipIdx, ignoreCase, afterSkip)
				if err != nil {
					return 0, err
				}

				return seq.PrependWildN(followingMR), nil
			case stateInLiteral:
				literal := string(buf)

				followingMR, err := compileFrom(seq, pattern, i, ignoreCase, cur)
				if err != nil {
					return 0, err
				}

				return seq.PrependLiteral(literal, ignoreCase, followingMR), nil
			default:
				buf = append(buf, r)
				i, cur = skipIdx, afterSkip

				continue
			}

		default:
			switch state {
			case stateInRange, stateInNotRange:
				if haveContinuumPrior {
					if err := pushContinuum(&buf, continuumPrior, r, cur); err != nil {
						return 0, err
					}

					haveContinuumPrior = false
				} else {
					buf = append(buf, r)
				}
			case stateNone:
				buf = append(buf, r)
				state = stateInLiteral
			default:
				buf = append(buf, r)
			}

			i, cur = skipIdx, afterSkip

			continue
		}
	}

	if escaped {
		return 0, newParseError(cur.line, cur.column, "trailing slash")
	}

	switch state {
	case stateNone:
		return 0, nil
	case stateInLiteral:
		return seq.PrependLiteral(string(buf), ignoreCase, 0), nil
	default:
		return 0, newParseError(cur.line, cur.column, "incomplete range")
	}
}

// pushContinuum expands the inclusive range [prior, posterior] (accepting
// either order) into buf. Both endpoints must be ASCII-alphabetic; if their
// case differs, both the lowercase and uppercase continuums are appended,
// per spec. pos is the posterior character's position, used verbatim in any
// resulting ParseError.
func pushContinuum(buf *[]rune, prior, posterior rune, pos position) error {
	if !isASCIIAlpha(prior) || !isASCIIAlpha(posterior) {
		return newParseError(pos.line, pos.column,
			fmt.Sprintf("the character range %c-%c does not define a supported (ASCII) range continuum", prior, posterior))
	}

	if isASCIILower(prior) == isASCIILower(posterior) {
		appendRange(buf, prior, posterior)
	} else {
		appendRange(buf, toASCIILower(prior), toASCIILower(posterior))
		appendRange(buf, toASCIIUpper(prior), toASCIIUpper(posterior))
	}

	return nil
}

// appendRange appends every rune in the inclusive range [from, to] to buf,
// normalizing a reversed pair (to < from) before doing so.
func appendRange(buf *[]rune, from, to rune) {
	if to < from {
		from, to = to, from
	}

	for r := from; r <= to; r++ {
		*buf = append(*buf, r)
	}
}
