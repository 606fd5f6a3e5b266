package matchchain

// Sequence is the owned, head-first chain of matcher nodes produced by the
// compiler. The chain always terminates in exactly one endNode; prepending
// a node detaches the current head, installs it as the new node's
// successor, then installs the new node as head.
type Sequence struct {
	head Node
	// numMatchers counts non-end nodes only.
	numMatchers int
}

// NewSequence returns a Sequence containing only the mandatory endNode.
func NewSequence() *Sequence {
	return &Sequence{head: endNode{}}
}

// Len reports the number of non-end matchers currently in the chain.
func (s *Sequence) Len() int {
	return s.numMatchers
}

// Matches delegates to the head of the chain.
func (s *Sequence) Matches(input string) bool {
	return s.head.tryMatch(input)
}

// detach removes and returns the current head, leaving the sequence
// momentarily headless; every prepend* method immediately installs a new
// head afterward.
func (s *Sequence) detach() Node {
	head := s.head
	s.head = nil

	return head
}

// PrependLiteral installs a literal matcher as the new head and returns the
// chain's total minimum-required input length (literal byte length plus
// followingMinimumRequired).
func (s *Sequence) PrependLiteral(literal string, ignoreCase bool, followingMinimumRequired int) int {
	next := s.detach()
	s.head = newLiteralNode(next, literal, ignoreCase)
	s.numMatchers++

	return len(literal) + followingMinimumRequired
}

// PrependRange installs a positive character-class matcher as the new head.
func (s *Sequence) PrependRange(set *charSet, followingMinimumRequired int) int {
	next := s.detach()
	s.head = &rangeNode{next: next, set: set}
	s.numMatchers++

	return 1 + followingMinimumRequired
}

// PrependNotRange installs a negative character-class matcher as the new
// head.
func (s *Sequence) PrependNotRange(set *charSet, followingMinimumRequired int) int {
	next := s.detach()
	s.head = &notRangeNode{next: next, set: set}
	s.numMatchers++

	return 1 + followingMinimumRequired
}

// PrependWild1 installs a "?" matcher as the new head.
func (s *Sequence) PrependWild1(followingMinimumRequired int) int {
	next := s.detach()
	s.head = &wild1Node{next: next}
	s.numMatchers++

	return 1 + followingMinimumRequired
}

// PrependWildN installs a "*" matcher as the new head. A "*" contributes
// nothing to the minimum-required length since it may match zero runes.
func (s *Sequence) PrependWildN(followingMinimumRequired int) int {
	next := s.detach()
	s.head = &wildNNode{next: next}
	s.numMatchers++

	return followingMinimumRequired
}
