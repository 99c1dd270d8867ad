package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/go-htmllint/lint/rules"
)

// record is the comparable projection of an Error.
type record struct {
	Code    Code
	Line    int
	Column  int
	Context Context
}

func records(errs []*Error) []record {
	out := make([]record, 0, len(errs))
	for _, e := range errs {
		out = append(out, record{Code: e.Code(), Line: e.Line(), Column: e.Column(), Context: e.Context()})
	}
	return out
}

func codesOf(errs []*Error) []Code {
	out := make([]Code, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Code())
	}
	return out
}

// fragmentRules are the default tables without required elements, so that
// fragments can be linted without doc-tag-required noise.
func fragmentRules() *rules.Rules {
	r := rules.Default().Clone()
	r.Required = rules.NewSet()
	return r
}

func newLinter(t *testing.T, opts ...Option) *Linter {
	t.Helper()
	l, err := New(opts...)
	require.NoError(t, err)
	return l
}

// lintFragment lints src with fragmentRules and returns the records.
func lintFragment(t *testing.T, src string, opts ...Option) []*Error {
	t.Helper()
	l := newLinter(t, append([]Option{WithRules(fragmentRules())}, opts...)...)
	l.BeginDocument("test.html")
	require.NoError(t, l.Parse(strings.NewReader(src)))
	return l.Errors()
}

func pos(line, col int) Position {
	return Position{Line: line, Column: col}
}
