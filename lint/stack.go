package lint

// openElement is an element whose end tag has not been seen yet.
type openElement struct {
	Tag string
	Pos Position
}

// elementStack is the stack of open, non-empty elements.
type elementStack []openElement

func (s *elementStack) push(tag string, pos Position) {
	*s = append(*s, openElement{Tag: tag, Pos: pos})
}

// find returns the index of the top-most element named tag, or -1 if tag is not open.
func (s *elementStack) find(tag string) int {
	for i := len(*s) - 1; i >= 0; i-- {
		if (*s)[i].Tag == tag {
			return i
		}
	}
	return -1
}

// popBackTo removes the top-most element named tag together with everything above it.
// It returns the elements that were above the match, most recently opened first.
// If tag is not open, the stack is left unchanged and popBackTo returns false.
func (s *elementStack) popBackTo(tag string) ([]openElement, bool) {
	i := s.find(tag)
	if i == -1 {
		return nil, false
	}
	var leftovers []openElement
	for j := len(*s) - 1; j > i; j-- {
		leftovers = append(leftovers, (*s)[j])
	}
	*s = (*s)[:i]
	return leftovers, true
}

func (s *elementStack) reset() {
	*s = (*s)[:0]
}
