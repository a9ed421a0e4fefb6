package game

import (
	"slices"
	"strings"
)

// LetterSet is a set of lowercase letters.
// The zero value is an empty set ready to use.
type LetterSet struct {
	m map[rune]struct{}
}

// NewLetterSet returns a set holding the given letters.
func NewLetterSet(letters ...rune) LetterSet {
	var s LetterSet
	for _, r := range letters {
		s.Add(r)
	}
	return s
}

// Add inserts r and reports whether it was not already present.
func (s *LetterSet) Add(r rune) bool {
	if s.m == nil {
		s.m = make(map[rune]struct{})
	}
	if _, ok := s.m[r]; ok {
		return false
	}
	s.m[r] = struct{}{}
	return true
}

// Has reports whether r is in the set.
func (s LetterSet) Has(r rune) bool {
	_, ok := s.m[r]
	return ok
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int { return len(s.m) }

// Clone returns an independent copy of the set.
func (s LetterSet) Clone() LetterSet {
	out := LetterSet{m: make(map[rune]struct{}, len(s.m))}
	for r := range s.m {
		out.m[r] = struct{}{}
	}
	return out
}

// Sorted returns the letters in ascending order, one string per letter.
func (s LetterSet) Sorted() []string {
	rs := make([]rune, 0, len(s.m))
	for r := range s.m {
		rs = append(rs, r)
	}
	slices.Sort(rs)
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// String renders the set as "a, b, c".
func (s LetterSet) String() string {
	return strings.Join(s.Sorted(), ", ")
}
