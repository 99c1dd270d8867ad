package rules

import "sort"

// Set is a set of lower-cased element or attribute names.
type Set map[string]struct{}

// NewSet returns a Set holding names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in s. A nil Set holds nothing.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names of s in lexical order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (s Set) clone() Set {
	c := make(Set, len(s))
	for n := range s {
		c[n] = struct{}{}
	}
	return c
}

func (s Set) add(names ...string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

func (s Set) remove(names ...string) {
	for _, n := range names {
		delete(s, n)
	}
}
