package lint

// Sink is an insertion-ordered collection of Errors. A category filter is applied
// when a record is added: records outside the filter are discarded, not stored.
type Sink struct {
	errs   []*Error
	filter map[Category]bool
}

// SetFilter replaces the category filter. No categories means accept all.
// Records already stored are kept.
func (s *Sink) SetFilter(categories ...Category) {
	if len(categories) == 0 {
		s.filter = nil
		return
	}
	s.filter = make(map[Category]bool, len(categories))
	for _, c := range categories {
		s.filter[c] = true
	}
}

// Accepts reports whether the filter lets records of category c through.
func (s *Sink) Accepts(c Category) bool {
	return s.filter == nil || s.filter[c]
}

// Add stores e if its category passes the filter.
func (s *Sink) Add(e *Error) bool {
	if !s.Accepts(e.category) {
		return false
	}
	s.errs = append(s.errs, e)
	return true
}

// Errors returns the stored records in insertion order.
func (s *Sink) Errors() []*Error {
	out := make([]*Error, len(s.errs))
	copy(out, s.errs)
	return out
}

// Len returns the number of stored records.
func (s *Sink) Len() int {
	return len(s.errs)
}

// Clear drops all stored records. The filter is kept.
func (s *Sink) Clear() {
	s.errs = nil
}
