package lint

import (
	"strings"

	"github.com/dpotapov/go-htmllint/lint/rules"
)

// directivePrefix starts a comment that switches defect codes on or off:
//
//	<!-- html-lint elem-unknown: off, attr-unknown: off -->
//	<!-- html-lint all: on -->
//
// Codes may also be written in camel case, as in elemUnknown.
const directivePrefix = "html-lint"

// parseSwitch normalizes a directive value.
func parseSwitch(v string) (on, ok bool) {
	switch strings.ToLower(v) {
	case "on", "1", "true", "yes":
		return true, true
	case "off", "0", "false", "no":
		return false, true
	}
	return false, false
}

// applyDirectives processes the text of a comment. It reports malformed directives
// at pos and updates the per-document code switches.
func (l *Linter) applyDirectives(pos Position, text string) {
	text = strings.TrimSpace(text)
	rest, ok := strings.CutPrefix(text, directivePrefix)
	if !ok || rest == "" || !isSpace(rest[0]) {
		return
	}
	for _, cmd := range strings.Split(rest, ",") {
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			continue
		}
		name, value, _ := strings.Cut(cmd, ":")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		code := Code(rules.CodeName(name))

		if name != "all" && !l.isKnownCode(code) {
			l.report(pos, ConfigUnknownDirective, Context{"directive": name})
			continue
		}
		on, ok := parseSwitch(value)
		if !ok {
			l.report(pos, ConfigUnknownValue, Context{"directive": name, "value": value})
			continue
		}

		if name == "all" {
			for c := range codes {
				l.disabled[c] = !on
			}
			for c := range l.custom {
				l.disabled[c] = !on
			}
			continue
		}
		l.disabled[code] = !on
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
