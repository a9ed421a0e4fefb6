package game

import (
	"slices"
	"testing"
)

func TestLetterSet(t *testing.T) {
	var s LetterSet
	if s.Has('a') || s.Len() != 0 {
		t.Fatal("zero value should be empty")
	}
	for _, r := range "zebra" {
		s.Add(r)
	}
	if s.Add('z') {
		t.Fatal("duplicate add reported as new")
	}
	if got, want := s.Sorted(), []string{"a", "b", "e", "r", "z"}; !slices.Equal(got, want) {
		t.Fatalf("Sorted = %v, want %v", got, want)
	}
	if got := s.String(); got != "a, b, e, r, z" {
		t.Fatalf("String = %q", got)
	}
}
