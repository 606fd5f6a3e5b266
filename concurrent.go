package wildmatch

import (
	"github.com/sourcegraph/conc/pool"
)

// MatchAny compiles each of patterns under flags and tests it against the
// single input, concurrently via a conc pool. It returns a same-order
// result slice, or the first *ParseError encountered (in patterns order)
// if any pattern is malformed.
func MatchAny(patterns []string, flags int, input string) ([]bool, error) {
	results := make([]bool, len(patterns))
	errs := make([]error, len(patterns))
	p := pool.New()

	for i, pattern := range patterns {
		i, pattern := i, pattern

		p.Go(func() {
			results[i], errs[i] = Matches(pattern, input, flags)
		})
	}

	p.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// MatchAll compiles pattern once and tests it against every one of inputs,
// concurrently via a conc pool. It returns a same-order result slice.
// Because a compiled Matcher is immutable, the single Matcher built here is
// shared across every worker goroutine without further synchronization.
func MatchAll(pattern string, flags int, inputs []string) ([]bool, error) {
	m, err := Compile(pattern, flags)
	if err != nil {
		return nil, err
	}

	results := make([]bool, len(inputs))
	p := pool.New()

	for i, input := range inputs {
		i, input := i, input

		p.Go(func() {
			results[i] = m.Matches(input)
		})
	}

	p.Wait()

	return results, nil
}
