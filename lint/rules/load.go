package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/camelcase"
	"gopkg.in/yaml.v3"
)

// SetPatch adds and removes names from one of the element sets.
type SetPatch struct {
	Add    []string `yaml:"add"`
	Remove []string `yaml:"remove"`
}

// Overlay is the YAML form of a rule table customization. Everything in an overlay
// is applied on top of the built-in tables.
//
//	elements:
//	  my-widget: [src, mode]
//	global-attributes: [hx-get]
//	attribute-prefixes: [x-]
//	required: {remove: [title]}
//	entities: {smile: 0x263A}
//	checks:
//	  - element: a
//	    when: 'attr("target") == "_blank" && !has("rel")'
//	    code: elem-a-rel-missing
//	    category: helper
//	    message: '<a target="_blank"> has no rel attribute'
type Overlay struct {
	Elements      map[string][]string `yaml:"elements"`
	Remove        []string            `yaml:"remove-elements"`
	GlobalAttrs   []string            `yaml:"global-attributes"`
	AttrPrefixes  []string            `yaml:"attribute-prefixes"`
	Required      SetPatch            `yaml:"required"`
	Nonrepeatable SetPatch            `yaml:"nonrepeatable"`
	OptionalEnd   SetPatch            `yaml:"optional-end"`
	Empty         SetPatch            `yaml:"empty"`
	Entities      map[string]rune     `yaml:"entities"`
	Checks        []CheckSpec         `yaml:"checks"`
}

// LoadError is returned when a rule overlay cannot be read or is invalid.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "load rules: " + e.Err.Error()
	}
	return "load rules " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a YAML overlay from r and applies it to a copy of the default tables.
func Load(r io.Reader) (*Rules, error) {
	var o Overlay
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{Err: err}
	}
	rr, err := o.Apply(Default())
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return rr, nil
}

// LoadFile is like Load but reads the overlay from the named file.
func LoadFile(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	r, err := Load(bytes.NewReader(data))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return r, nil
}

// Apply returns a copy of base with the overlay applied. base is not modified.
func (o *Overlay) Apply(base *Rules) (*Rules, error) {
	r := base.Clone()

	for name, attrs := range o.Elements {
		name = strings.ToLower(name)
		set, ok := r.Elements[name]
		if !ok {
			set = NewSet()
			r.Elements[name] = set
		}
		for _, a := range attrs {
			set.add(strings.ToLower(a))
		}
	}
	for _, name := range o.Remove {
		delete(r.Elements, strings.ToLower(name))
	}
	for _, a := range o.GlobalAttrs {
		r.GlobalAttrs.add(strings.ToLower(a))
	}
	r.AttrPrefixes = append(r.AttrPrefixes, o.AttrPrefixes...)

	o.Required.apply(r.Required)
	o.Nonrepeatable.apply(r.Nonrepeatable)
	o.OptionalEnd.apply(r.OptionalEnd)
	o.Empty.apply(r.Empty)

	for name, c := range o.Entities {
		name = strings.TrimSuffix(strings.TrimPrefix(name, "&"), ";")
		if name == "" {
			return nil, errors.New("empty entity name")
		}
		r.Entities[name] = c
	}

	for i, c := range o.Checks {
		if c.Element == "" || c.When == "" || c.Code == "" {
			return nil, fmt.Errorf("check %d: element, when and code are required", i)
		}
		c.Element = strings.ToLower(c.Element)
		c.Code = CodeName(c.Code)
		r.Checks = append(r.Checks, c)
	}

	r.index()
	return r, nil
}

func (p SetPatch) apply(s Set) {
	for _, n := range p.Add {
		s.add(strings.ToLower(n))
	}
	for _, n := range p.Remove {
		s.remove(strings.ToLower(n))
	}
}

// CodeName converts a check code to the kebab-case form used by the built-in codes,
// so that "elemARelMissing", "elem_a_rel_missing" and "elem-a-rel-missing" all name
// the same code. Digits stay attached to the preceding word: "h1Missing" is "h1-missing".
func CodeName(s string) string {
	blocks := strings.Split(strings.ReplaceAll(s, "_", "-"), "-")
	out := make([]string, 0, len(blocks))

	for _, block := range blocks {
		if block == "" {
			continue
		}
		var words []string
		for _, w := range camelcase.Split(block) {
			switch {
			case w == "":
			case isDigits(w) && len(words) > 0:
				words[len(words)-1] += w
			default:
				words = append(words, strings.ToLower(w))
			}
		}
		out = append(out, words...)
	}
	return strings.Join(out, "-")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
