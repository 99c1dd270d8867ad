// Package rules holds the static tables the linter validates documents against:
// known elements and their attributes, the required, nonrepeatable, optional-end-tag
// and empty element sets, and the canonical named entity set.
//
// The tables returned by Default are shared and must be treated as read-only. Load
// derives a new, independent set of tables from the defaults.
package rules

import (
	"sort"
	"strings"
	"sync"
)

// Rules is a complete set of rule tables.
type Rules struct {
	// Elements maps every known element to the attributes specific to it.
	Elements map[string]Set

	// GlobalAttrs are known for every element.
	GlobalAttrs Set

	// AttrPrefixes makes any attribute starting with one of the prefixes known
	// for every element (e.g. "data-").
	AttrPrefixes []string

	// Required elements must appear at least once per document.
	Required Set

	// Nonrepeatable elements may appear at most once per document.
	Nonrepeatable Set

	// OptionalEnd elements may be implicitly closed by their parent's end tag.
	OptionalEnd Set

	// Empty elements have no content and no end tag.
	Empty Set

	// Entities maps canonical entity names (without & and ;) to their character.
	Entities map[string]rune

	// Checks are expression checks applied to opened elements.
	Checks []CheckSpec

	// chars is the reverse of Entities.
	chars map[rune]string
}

// CheckSpec describes an expression check attached to an element.
type CheckSpec struct {
	// Element is the element name the check applies to.
	Element string `yaml:"element"`
	// When is a boolean expression; the check reports when it evaluates to true.
	When string `yaml:"when"`
	// Code is the defect code reported.
	Code string `yaml:"code"`
	// Category is one of structure, helper or fluff.
	Category string `yaml:"category"`
	// Message is the human-readable text. ${tag} and ${<attr>} are expanded.
	Message string `yaml:"message"`
}

var defaultRules = sync.OnceValue(func() *Rules {
	r := &Rules{
		Elements:      make(map[string]Set, len(htmlElements)),
		GlobalAttrs:   NewSet(globalAttrs...),
		AttrPrefixes:  []string{"data-", "aria-"},
		Required:      NewSet("html", "head", "title", "body"),
		Nonrepeatable: NewSet("base", "body", "frameset", "head", "html", "title"),
		OptionalEnd:   NewSet(optionalEndElements...),
		Empty:         NewSet(emptyElements...),
		Entities:      make(map[string]rune, len(htmlEntities)),
	}
	for name, attrs := range htmlElements {
		r.Elements[name] = NewSet(attrs...)
	}
	for name, c := range htmlEntities {
		r.Entities[name] = c
	}
	r.index()
	return r
})

// Default returns the built-in HTML tables. The result is shared by all callers.
func Default() *Rules {
	return defaultRules()
}

// Clone returns a deep copy of r that may be modified freely.
func (r *Rules) Clone() *Rules {
	c := &Rules{
		Elements:      make(map[string]Set, len(r.Elements)),
		GlobalAttrs:   r.GlobalAttrs.clone(),
		AttrPrefixes:  append([]string(nil), r.AttrPrefixes...),
		Required:      r.Required.clone(),
		Nonrepeatable: r.Nonrepeatable.clone(),
		OptionalEnd:   r.OptionalEnd.clone(),
		Empty:         r.Empty.clone(),
		Entities:      make(map[string]rune, len(r.Entities)),
		Checks:        append([]CheckSpec(nil), r.Checks...),
	}
	for name, attrs := range r.Elements {
		c.Elements[name] = attrs.clone()
	}
	for name, ch := range r.Entities {
		c.Entities[name] = ch
	}
	c.index()
	return c
}

// index rebuilds the lookup tables derived from Entities.
func (r *Rules) index() {
	r.chars = make(map[rune]string, len(r.Entities))
	for _, name := range r.EntityNames() {
		ch := r.Entities[name]
		// Prefer the first name in lexical order when several map to one character.
		if _, ok := r.chars[ch]; !ok {
			r.chars[ch] = name
		}
	}
}

// IsKnown reports whether tag is a known element.
func (r *Rules) IsKnown(tag string) bool {
	_, ok := r.Elements[tag]
	return ok
}

// IsKnownAttr reports whether attr is valid on tag.
func (r *Rules) IsKnownAttr(tag, attr string) bool {
	if r.Elements[tag].Has(attr) || r.GlobalAttrs.Has(attr) {
		return true
	}
	for _, p := range r.AttrPrefixes {
		if strings.HasPrefix(attr, p) && len(attr) > len(p) {
			return true
		}
	}
	return false
}

// IsEntity reports whether name (without & and ;) is a canonical entity.
func (r *Rules) IsEntity(name string) bool {
	_, ok := r.Entities[name]
	return ok
}

// EntityFor returns the canonical entity name for c.
func (r *Rules) EntityFor(c rune) (string, bool) {
	name, ok := r.chars[c]
	return name, ok
}

// EntityNames returns all canonical entity names in lexical order.
func (r *Rules) EntityNames() []string {
	names := make([]string, 0, len(r.Entities))
	for n := range r.Entities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
