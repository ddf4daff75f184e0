package pantry

import "strings"

// Normalize lowercases and trims whitespace from a raw ingredient name.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// Set is the ordered collection of ingredients the user has on hand.
// Entries are normalized on the way in; blanks and duplicates are dropped.
type Set struct {
	items []string
}

func New() *Set {
	return &Set{items: make([]string, 0)}
}

// Add appends a normalized ingredient. It reports whether the set changed:
// blank input and duplicates are rejected.
func (s *Set) Add(raw string) bool {
	name := Normalize(raw)
	if name == "" {
		return false
	}
	for _, existing := range s.items {
		if existing == name {
			return false
		}
	}
	s.items = append(s.items, name)
	return true
}

// Remove deletes the entry at index i, preserving the order of the rest.
func (s *Set) Remove(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// RemoveLast pops the most recently added entry.
func (s *Set) RemoveLast() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

func (s *Set) Clear() {
	s.items = s.items[:0]
}

func (s *Set) Len() int {
	return len(s.items)
}

// Items returns a copy so callers cannot mutate the set out from under us.
func (s *Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
