// Package lint checks HTML documents for structural and stylistic defects: unknown
// elements and attributes, mismatched or missing end tags, repeated attributes,
// elements that must not repeat, required elements that never appear, and text with
// characters or entity references that should be escaped differently.
//
// A Linter consumes parse events (see Handler) and collects the defects it finds as
// Error records. Parse and Write/EOF bind the golang.org/x/net/html tokenizer as the
// event source; any other tokenizer may drive the Handler methods directly.
package lint

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dpotapov/go-htmllint/lint/rules"
)

// Handler receives tokenizer events in document order.
type Handler interface {
	StartDocument()
	// OpenTag is called for every start tag, including self-closed ones.
	OpenTag(pos Position, name string, attrs []Attr)
	// CloseTag is called for every end tag. explicit is false when the tokenizer
	// synthesizes the close for a self-closed tag such as <br/>.
	CloseTag(pos Position, name string, explicit bool)
	// Text is called with the raw, unescaped-as-written text of a text run.
	Text(pos Position, raw string)
	Comment(pos Position, text string)
	EndDocument(pos Position)
}

// DefaultIgnoreElements are the elements whose contents are not treated as markup.
var DefaultIgnoreElements = []string{"script", "style"}

// Option configures a Linter.
type Option func(*Linter)

// WithRules sets the rule tables. The default is rules.Default().
func WithRules(r *rules.Rules) Option {
	return func(l *Linter) { l.rules = r }
}

// WithChecks adds expression checks to those of the rule tables.
func WithChecks(specs ...rules.CheckSpec) Option {
	return func(l *Linter) { l.extraChecks = append(l.extraChecks, specs...) }
}

// WithFilter sets the initial category filter. The default accepts all categories.
func WithFilter(categories ...Category) Option {
	return func(l *Linter) { l.sink.SetFilter(categories...) }
}

// WithIgnoreElements replaces the set of elements whose contents are skipped.
func WithIgnoreElements(names ...string) Option {
	return func(l *Linter) {
		l.ignore = rules.NewSet()
		for _, n := range names {
			l.ignore[strings.ToLower(n)] = struct{}{}
		}
	}
}

// WithLogger sets the logger for internal events. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) { l.logger = logger }
}

// WithMaxBuf limits the tokenizer's buffer; see html.Tokenizer.SetMaxBuf.
func WithMaxBuf(n int) Option {
	return func(l *Linter) { l.maxBuf = n }
}

// Linter is the validating consumer of parse events. It is not safe for concurrent
// use; one document is linted at a time.
type Linter struct {
	rules  *rules.Rules
	ignore rules.Set
	logger *slog.Logger
	maxBuf int

	// extraChecks are added to the checks of the rules passed to New.
	extraChecks []rules.CheckSpec

	// checks holds the element-specific rules, built-in and compiled from rules.Checks.
	checks map[string][]CheckFunc
	// custom holds the codes reported by compiled checks.
	custom map[Code]codeInfo

	sink Sink
	// file labels the records of the current document.
	file string

	// Per-document state.
	stack     elementStack
	firstSeen map[string]Position
	disabled  map[Code]bool
	// ignoring is the open element whose contents are being skipped.
	ignoring string
	scanner  textScanner
	buf      bytes.Buffer
}

var _ Handler = (*Linter)(nil)

// New returns a Linter. It fails if an expression check in the rules does not compile.
func New(opts ...Option) (*Linter, error) {
	l := &Linter{
		rules:     rules.Default(),
		ignore:    rules.NewSet(DefaultIgnoreElements...),
		firstSeen: make(map[string]Position),
		disabled:  make(map[Code]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(l.extraChecks) > 0 {
		r := l.rules.Clone()
		r.Checks = append(r.Checks, l.extraChecks...)
		l.rules = r
	}
	if err := l.SetRules(l.rules); err != nil {
		return nil, err
	}
	return l, nil
}

// SetRules replaces the rule tables and recompiles the expression checks.
func (l *Linter) SetRules(r *rules.Rules) error {
	checks := copyChecks()
	custom := make(map[Code]codeInfo)

	for _, spec := range r.Checks {
		c, info, err := compileCheck(spec)
		if err != nil {
			return err
		}
		if _, ok := codes[c.code]; ok {
			return fmt.Errorf("check %s on <%s>: code is reserved", spec.Code, spec.Element)
		}
		custom[c.code] = info
		checks[spec.Element] = append(checks[spec.Element], func(el *Element, report func(Code, Context)) {
			if err := c.run(el, report); err != nil {
				l.logger.Warn("Run element check", "file", l.file, "error", err)
			}
		})
	}

	l.rules = r
	l.checks = checks
	l.custom = custom
	l.scanner.reset(r)
	return nil
}

// Rules returns the rule tables in use.
func (l *Linter) Rules() *rules.Rules {
	return l.rules
}

// SetFilter replaces the category filter. Records already collected are kept.
func (l *Linter) SetFilter(categories ...Category) {
	l.sink.SetFilter(categories...)
}

// BeginDocument resets the per-document state and labels the records of the next
// document with file. Collected records are kept.
func (l *Linter) BeginDocument(file string) {
	l.file = file
	l.buf.Reset()
	l.scanner.reset(l.rules)
	l.resetDocument()
}

// File returns the label of the current document.
func (l *Linter) File() string {
	return l.file
}

func (l *Linter) resetDocument() {
	l.stack.reset()
	clear(l.firstSeen)
	clear(l.disabled)
	l.ignoring = ""
}

// Write buffers a chunk of the current document. It never fails.
func (l *Linter) Write(p []byte) (int, error) {
	return l.buf.Write(p)
}

// EOF lints the chunks written since BeginDocument and runs the end-of-document
// checks. It returns the tokenizer's error, if any.
func (l *Linter) EOF() error {
	defer l.buf.Reset()
	return Tokenize(&l.buf, l, l.maxBuf)
}

// Parse lints one complete document read from r.
func (l *Linter) Parse(r io.Reader) error {
	return Tokenize(r, l, l.maxBuf)
}

// Errors returns the collected records in the order they were found.
func (l *Linter) Errors() []*Error {
	return l.sink.Errors()
}

// Len returns the number of collected records.
func (l *Linter) Len() int {
	return l.sink.Len()
}

// ClearErrors drops the collected records without touching the parse state.
func (l *Linter) ClearErrors() {
	l.sink.Clear()
}

func (l *Linter) isKnownCode(c Code) bool {
	if _, ok := codes[c]; ok {
		return true
	}
	_, ok := l.custom[c]
	return ok
}

// report records a defect of kind code at pos unless a directive switched it off.
func (l *Linter) report(pos Position, code Code, ctx Context) {
	if l.disabled[code] {
		return
	}
	info, ok := codes[code]
	if !ok {
		if info, ok = l.custom[code]; !ok {
			info = codeInfo{category: Structure, message: string(code)}
		}
	}
	l.sink.Add(newError(info, code, l.file, pos, ctx))
}

func (l *Linter) StartDocument() {
	l.resetDocument()
	l.logger.Debug("Start document", "file", l.file)
}

func (l *Linter) OpenTag(pos Position, name string, attrs []Attr) {
	if l.ignoring != "" {
		return
	}
	name = strings.ToLower(name)

	if !l.rules.IsKnown(name) {
		l.report(pos, ElemUnknown, Context{"tag": name})
	} else {
		seen := make(map[string]bool, len(attrs))
		for _, a := range attrs {
			key := strings.ToLower(a.Key)
			if seen[key] {
				l.report(pos, AttrRepeated, Context{"tag": name, "attr": key})
			}
			seen[key] = true
			if !l.rules.IsKnownAttr(name, key) {
				l.report(pos, AttrUnknown, Context{"tag": name, "attr": key})
			}
		}
	}

	if !l.rules.Empty.Has(name) {
		l.stack.push(name, pos)
	}

	if where, ok := l.firstSeen[name]; ok {
		if l.rules.Nonrepeatable.Has(name) {
			l.report(pos, ElemNonrepeatable, Context{"tag": name, "where": where.String()})
		}
	} else {
		l.firstSeen[name] = pos
	}

	if fns := l.checks[name]; len(fns) > 0 {
		el := &Element{Tag: name, Attrs: attrs, Pos: pos}
		report := func(code Code, ctx Context) { l.report(pos, code, ctx) }
		for _, fn := range fns {
			fn(el, report)
		}
	}

	if l.ignore.Has(name) {
		l.ignoring = name
	}
}

// CloseTag validates an end tag. Closes synthesized for self-closed tags are
// ignored: <div/> leaves div open, as it does for an HTML parser.
func (l *Linter) CloseTag(pos Position, name string, explicit bool) {
	if !explicit {
		return
	}
	name = strings.ToLower(name)
	if l.ignoring != "" {
		if name != l.ignoring {
			return
		}
		l.ignoring = ""
	}

	if l.rules.Empty.Has(name) {
		l.report(pos, ElemEmptyButClosed, Context{"tag": name})
		return
	}

	leftovers, ok := l.stack.popBackTo(name)
	if !ok {
		l.report(pos, ElemUnopened, Context{"tag": name})
		return
	}
	for _, e := range leftovers {
		if !l.rules.OptionalEnd.Has(e.Tag) {
			l.report(pos, ElemUnclosed, Context{"tag": e.Tag, "where": e.Pos.String()})
		}
	}
}

func (l *Linter) Text(pos Position, raw string) {
	if l.ignoring != "" {
		return
	}
	l.scanner.scan(raw, func(code Code, ctx Context) { l.report(pos, code, ctx) })
}

func (l *Linter) Comment(pos Position, text string) {
	if l.ignoring != "" {
		return
	}
	l.applyDirectives(pos, text)
}

func (l *Linter) EndDocument(pos Position) {
	for _, tag := range l.rules.Required.Sorted() {
		if _, ok := l.firstSeen[tag]; !ok {
			l.report(pos, DocTagRequired, Context{"tag": tag})
		}
	}
	l.ignoring = ""
	l.logger.Debug("End document", "file", l.file, "errors", l.sink.Len())
}
