package lint

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"
)

// Category is the class of a defect, used for filtering.
type Category int

const (
	// Structure defects are malformed nesting or tag usage.
	Structure Category = iota + 1
	// Helper defects are actionable style hints.
	Helper
	// Fluff defects are cosmetic text issues.
	Fluff
)

var categoryNames = map[Category]string{
	Structure: "STRUCTURE",
	Helper:    "HELPER",
	Fluff:     "FLUFF",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory parses a category name, ignoring case.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	if _, ok := categoryNames[c]; !ok {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Code identifies the kind of a defect.
type Code string

const (
	// AttrRepeated indicates an attribute appears twice in the same tag.
	AttrRepeated Code = "attr-repeated"
	// AttrUnknown indicates an attribute not valid for the element.
	AttrUnknown Code = "attr-unknown"
	// ConfigUnknownDirective indicates an html-lint comment naming an unknown code.
	ConfigUnknownDirective Code = "config-unknown-directive"
	// ConfigUnknownValue indicates an html-lint comment with a value other than on/off.
	ConfigUnknownValue Code = "config-unknown-value"
	// DocTagRequired indicates a required element never appeared in the document.
	DocTagRequired Code = "doc-tag-required"
	// ElemEmptyButClosed indicates an end tag for an empty element.
	ElemEmptyButClosed Code = "elem-empty-but-closed"
	// ElemImgAltMissing indicates an image without alternative text.
	ElemImgAltMissing Code = "elem-img-alt-missing"
	// ElemImgSizesMissing indicates an image with neither height nor width.
	ElemImgSizesMissing Code = "elem-img-sizes-missing"
	// ElemNonrepeatable indicates a second occurrence of a nonrepeatable element.
	ElemNonrepeatable Code = "elem-nonrepeatable"
	// ElemUnclosed indicates an element implicitly closed by an ancestor's end tag.
	ElemUnclosed Code = "elem-unclosed"
	// ElemUnknown indicates an element not in the known element set.
	ElemUnknown Code = "elem-unknown"
	// ElemUnopened indicates an end tag with no matching open element.
	ElemUnopened Code = "elem-unopened"
	// TextInvalidEntity indicates a numeric entity out of range.
	TextInvalidEntity Code = "text-invalid-entity"
	// TextUnclosedEntity indicates a named entity without its semicolon.
	TextUnclosedEntity Code = "text-unclosed-entity"
	// TextUnknownEntity indicates a named entity not in the canonical set.
	TextUnknownEntity Code = "text-unknown-entity"
	// TextUseEntity indicates a character that should be written as an entity.
	TextUseEntity Code = "text-use-entity"
)

type codeInfo struct {
	category Category
	message  string // ${key} is expanded from the record context
}

var codes = map[Code]codeInfo{
	AttrRepeated:           {Structure, `<${tag}> attribute "${attr}" is repeated`},
	AttrUnknown:            {Structure, `Unknown attribute "${attr}" for tag <${tag}>`},
	ConfigUnknownDirective: {Structure, `Unknown directive "${directive}"`},
	ConfigUnknownValue:     {Structure, `Unknown value "${value}" for directive "${directive}"`},
	DocTagRequired:         {Structure, `<${tag}> tag is required`},
	ElemEmptyButClosed:     {Structure, `<${tag}> is not a container -- </${tag}> is not allowed`},
	ElemImgAltMissing:      {Helper, `<img src="${src}"> does not have ALT text defined`},
	ElemImgSizesMissing:    {Helper, `<img src="${src}"> tag has no HEIGHT and WIDTH attributes`},
	ElemNonrepeatable:      {Structure, `<${tag}> is not repeatable, but already appeared at ${where}`},
	ElemUnclosed:           {Structure, `<${tag}> at ${where} is never closed`},
	ElemUnknown:            {Structure, `Unknown element <${tag}>`},
	ElemUnopened:           {Structure, `</${tag}> with no opening <${tag}>`},
	TextInvalidEntity:      {Fluff, `Entity ${entity} is invalid`},
	TextUnclosedEntity:     {Fluff, `Entity ${entity} is missing its closing semicolon`},
	TextUnknownEntity:      {Fluff, `Entity ${entity} is unknown`},
	TextUseEntity:          {Fluff, `Character "${char}" should be written as ${entity}`},
}

// Codes returns all built-in defect codes.
func Codes() []Code {
	out := make([]Code, 0, len(codes))
	for c := range codes {
		out = append(out, c)
	}
	return out
}

// CategoryOf returns the category of a built-in code.
func CategoryOf(code Code) (Category, bool) {
	info, ok := codes[code]
	return info.category, ok
}

// Context is the kind-specific payload of an Error, such as {tag, attr}.
type Context map[string]string

// Error describes one defect found in a document. It is immutable once created.
type Error struct {
	code     Code
	category Category
	file     string
	pos      Position
	context  Context
	message  string
}

func newError(info codeInfo, code Code, file string, pos Position, ctx Context) *Error {
	return &Error{
		code:     code,
		category: info.category,
		file:     file,
		pos:      pos,
		context:  ctx,
		message:  expand(info.message, ctx),
	}
}

func expand(tmpl string, ctx Context) string {
	return os.Expand(tmpl, func(k string) string { return ctx[k] })
}

func (e *Error) Code() Code                   { return e.code }
func (e *Error) Category() Category           { return e.category }
func (e *Error) File() string                 { return e.file }
func (e *Error) Line() int                    { return e.pos.Line }
func (e *Error) Column() int                  { return e.pos.Column }
func (e *Error) Position() Position           { return e.pos }
func (e *Error) Message() string              { return e.message }
func (e *Error) Context() Context             { return maps.Clone(e.context) }
func (e *Error) ContextValue(k string) string { return e.context[k] }

// Where renders the location of the defect as "(line:column)".
func (e *Error) Where() string {
	return e.pos.String()
}

// Error renders the defect as "file (line:column) message".
func (e *Error) Error() string {
	if e.file == "" {
		return e.Where() + " " + e.message
	}
	return e.file + " " + e.Where() + " " + e.message
}

type errorJSON struct {
	Code     Code     `json:"code"`
	Category Category `json:"category"`
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Message  string   `json:"message"`
	Context  Context  `json:"context,omitempty"`
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{
		Code:     e.code,
		Category: e.category,
		File:     e.file,
		Line:     e.pos.Line,
		Column:   e.pos.Column,
		Message:  e.message,
		Context:  e.context,
	})
}
