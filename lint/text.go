package lint

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dpotapov/go-htmllint/lint/rules"
)

var (
	entityRefRegex = regexp.MustCompile(`&([^;&\s]+);`)
	decimalRegex   = regexp.MustCompile(`^#([0-9]+)$`)
	hexRegex       = regexp.MustCompile(`^#[xX]([0-9a-fA-F]+)$`)
)

// maxCodePoint is the largest code point a numeric entity may reference.
const maxCodePoint = 65536

// textScanner validates the characters and entity references of text runs.
type textScanner struct {
	rules *rules.Rules

	// unclosed matches every canonical entity name, optionally followed by ';'.
	// It is built on first use and dropped whenever the rules change.
	unclosed *regexp.Regexp
}

type reportFunc func(code Code, ctx Context)

func (s *textScanner) reset(r *rules.Rules) {
	s.rules = r
	s.unclosed = nil
}

// scan runs all passes over text. Every pass may report several times.
func (s *textScanner) scan(text string, report reportFunc) {
	s.scanAmpersands(text, report)
	s.scanSpecialChars(text, report)
	s.scanUnclosedEntities(text, report)
	s.scanEntityRefs(text, report)
}

// scanAmpersands reports '&' that cannot start an entity reference.
func (s *textScanner) scanAmpersands(text string, report reportFunc) {
	for i := 0; i < len(text); i++ {
		if text[i] != '&' {
			continue
		}
		if i+1 < len(text) && startsEntity(text[i+1]) {
			continue
		}
		report(TextUseEntity, Context{"char": "&", "entity": "&amp;"})
	}
}

func startsEntity(b byte) bool {
	return b == '#' || '0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// scanSpecialChars reports characters outside printable ASCII, tab, CR and LF.
func (s *textScanner) scanSpecialChars(text string, report reportFunc) {
	for _, r := range text {
		if r == '\t' || r == '\n' || r == '\r' || (r >= 0x20 && r <= 0x7E) {
			continue
		}
		entity := "&#" + strconv.Itoa(int(r)) + ";"
		if name, ok := s.rules.EntityFor(r); ok {
			entity = "&" + name + ";"
		}
		report(TextUseEntity, Context{"char": fmt.Sprintf(`\x%02X`, r), "entity": entity})
	}
}

// scanUnclosedEntities reports canonical entity names not terminated by ';'.
func (s *textScanner) scanUnclosedEntities(text string, report reportFunc) {
	if strings.IndexByte(text, '&') < 0 {
		return
	}
	re := s.unclosedRegex()
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if m[4] == m[5] { // no ';'
			report(TextUnclosedEntity, Context{"entity": text[m[0]:m[3]]})
		}
	}
}

func (s *textScanner) unclosedRegex() *regexp.Regexp {
	if s.unclosed != nil {
		return s.unclosed
	}
	names := s.rules.EntityNames()
	// Longest names first so that "sup1" wins over its prefix "sup".
	sort.SliceStable(names, func(i, j int) bool {
		return utf8.RuneCountInString(names[i]) > utf8.RuneCountInString(names[j])
	})
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	s.unclosed = regexp.MustCompile(`&(` + strings.Join(quoted, "|") + `)(;?)`)
	return s.unclosed
}

// scanEntityRefs validates every "&...;" sequence.
func (s *textScanner) scanEntityRefs(text string, report reportFunc) {
	if strings.IndexByte(text, '&') < 0 {
		return
	}
	for _, m := range entityRefRegex.FindAllStringSubmatch(text, -1) {
		ref, body := m[0], m[1]
		if d := decimalRegex.FindStringSubmatch(body); d != nil {
			if n, err := strconv.Atoi(d[1]); err != nil || n > maxCodePoint {
				report(TextInvalidEntity, Context{"entity": ref})
			}
			continue
		}
		if h := hexRegex.FindStringSubmatch(body); h != nil {
			if len(h[1]) > 4 {
				report(TextInvalidEntity, Context{"entity": ref})
			}
			continue
		}
		if !s.rules.IsEntity(body) {
			report(TextUnknownEntity, Context{"entity": ref})
		}
	}
}
