package cssdrift

import "sort"

// ClassSet is an insertion-ordered set of class-name tokens. Duplicates
// collapse on Add, and the empty string is never stored, so every element
// is a non-empty token in first-seen order.
type ClassSet struct {
	order []string
	items map[string]struct{}
}

// NewClassSet creates a set containing the given names.
func NewClassSet(names ...string) *ClassSet {
	s := &ClassSet{items: make(map[string]struct{})}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add inserts a name into the set. Empty strings and duplicates are ignored.
func (s *ClassSet) Add(name string) {
	if name == "" {
		return
	}
	if _, ok := s.items[name]; ok {
		return
	}
	s.items[name] = struct{}{}
	s.order = append(s.order, name)
}

// AddAll inserts every element of other into the set.
func (s *ClassSet) AddAll(other *ClassSet) {
	if other == nil {
		return
	}
	for _, name := range other.order {
		s.Add(name)
	}
}

// Has reports whether name is in the set.
func (s *ClassSet) Has(name string) bool {
	_, ok := s.items[name]
	return ok
}

// Len returns the number of elements.
func (s *ClassSet) Len() int {
	return len(s.order)
}

// Values returns the elements in insertion order. The slice is always
// non-nil so it serializes as [] rather than null.
func (s *ClassSet) Values() []string {
	values := make([]string, 0, len(s.order))
	return append(values, s.order...)
}

// Sorted returns the elements in lexicographic order.
func (s *ClassSet) Sorted() []string {
	values := s.Values()
	sort.Strings(values)
	return values
}
