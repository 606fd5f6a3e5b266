package matchchain

import "sort"

// denseTableSize is the number of low code points that get a direct-indexed
// membership table. Everything at or above this falls back to a sorted,
// deduplicated slice searched with binary search.
const denseTableSize = 256

// charSet is the membership structure produced by buildCharSet. It is built
// once at compile time and never mutated afterwards, so Contains is safe for
// concurrent readers.
type charSet struct {
	low  [denseTableSize]bool
	high []rune // sorted, deduplicated, holds only runes >= denseTableSize
}

// buildCharSet normalizes runes into a charSet, applying ASCII case-folding
// when ignoreCase is set: each ASCII-alphabetic rune contributes both its
// lower- and upper-case forms, everything else is inserted unchanged.
// Duplicates are removed; insertion order does not affect the result.
func buildCharSet(runes []rune, ignoreCase bool) *charSet {
	cs := &charSet{}

	var high []rune

	insert := func(r rune) {
		if r < denseTableSize {
			cs.low[r] = true
			return
		}

		high = append(high, r)
	}

	for _, r := range runes {
		if ignoreCase && isASCIIAlpha(r) {
			insert(toASCIILower(r))
			insert(toASCIIUpper(r))
		} else {
			insert(r)
		}
	}

	if len(high) > 0 {
		sort.Slice(high, func(i, j int) bool { return high[i] < high[j] })

		deduped := high[:1]

		for _, r := range high[1:] {
			if r != deduped[len(deduped)-1] {
				deduped = append(deduped, r)
			}
		}

		cs.high = deduped
	}

	return cs
}

// Contains reports whether r is a member of the set.
func (cs *charSet) Contains(r rune) bool {
	if r >= 0 && r < denseTableSize {
		return cs.low[r]
	}

	if len(cs.high) == 0 {
		return false
	}

	i := sort.Search(len(cs.high), func(i int) bool { return cs.high[i] >= r })

	return i < len(cs.high) && cs.high[i] == r
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func toASCIILower(r rune) rune {
	if isASCIIUpper(r) {
		return r + ('a' - 'A')
	}

	return r
}

func toASCIIUpper(r rune) rune {
	if isASCIILower(r) {
		return r - ('a' - 'A')
	}

	return r
}
