package lint

// Attr is an attribute of an opening tag, as delivered by the tokenizer.
type Attr struct {
	Key string
	Val string
}

// Element is an opening tag being validated.
type Element struct {
	Tag   string
	Attrs []Attr
	Pos   Position
}

// Attr returns the value of the first attribute named key.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Has reports whether the element carries an attribute named key.
func (e *Element) Has(key string) bool {
	_, ok := e.Attr(key)
	return ok
}

// CheckFunc is an element-specific rule. It runs after the generic rules for every
// opening tag of the element it is registered for and reports defects through report.
type CheckFunc func(el *Element, report func(code Code, ctx Context))

// checks maps element names to their element-specific rules.
var checks = map[string][]CheckFunc{
	"img": {checkImg},
}

// RegisterCheck adds fn to the rules of tag for all Linters created afterwards.
// It is meant to be called from init functions and is not safe for concurrent use.
func RegisterCheck(tag string, fn CheckFunc) {
	checks[tag] = append(checks[tag], fn)
}

func copyChecks() map[string][]CheckFunc {
	m := make(map[string][]CheckFunc, len(checks))
	for tag, fns := range checks {
		m[tag] = append([]CheckFunc(nil), fns...)
	}
	return m
}

func checkImg(el *Element, report func(code Code, ctx Context)) {
	src, _ := el.Attr("src")
	if !el.Has("height") && !el.Has("width") {
		report(ElemImgSizesMissing, Context{"src": src})
	}
	if !el.Has("alt") {
		report(ElemImgAltMissing, Context{"src": src})
	}
}
