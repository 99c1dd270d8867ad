package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectives(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Code
	}{
		{
			name: "switch one code off",
			src:  `<!-- html-lint elem-unknown: off --><blink foo=1>A & B</blink>`,
			want: []Code{TextUseEntity},
		},
		{
			name: "switch off and on again",
			src:  `<!-- html-lint text-use-entity: off -->A & B<!-- html-lint text-use-entity: on -->C & D`,
			want: []Code{TextUseEntity},
		},
		{
			name: "several codes",
			src:  `<!--html-lint elem-unknown: 0, text-use-entity: no--><blink>A & B</blink>`,
			want: nil,
		},
		{
			name: "camel case code",
			src:  `<!-- html-lint elemUnknown: off --><blink></blink>`,
			want: nil,
		},
		{
			name: "all off",
			src:  `<!-- html-lint all: off --><blink>A & B</blink><img src=a>`,
			want: nil,
		},
		{
			name: "all off then one on",
			src:  `<!-- html-lint all: off, elem-unknown: ON --><blink>A & B</blink>`,
			want: []Code{ElemUnknown},
		},
		{
			name: "unknown directive",
			src:  `<!-- html-lint bogus: off --><blink></blink>`,
			want: []Code{ConfigUnknownDirective, ElemUnknown},
		},
		{
			name: "unknown value",
			src:  `<!-- html-lint elem-unknown: maybe --><blink></blink>`,
			want: []Code{ConfigUnknownValue, ElemUnknown},
		},
		{
			name: "ordinary comment",
			src:  `<!-- html-linting is fun --><!-- elem-unknown: off --><blink></blink>`,
			want: []Code{ElemUnknown},
		},
		{
			name: "directive inside script is ignored",
			src:  `<script><!-- html-lint all: off --></script><blink></blink>`,
			want: []Code{ElemUnknown},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codesOf(lintFragment(t, tt.src))
			if len(tt.want) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDirectives_Context(t *testing.T) {
	got := lintFragment(t, "<p>\n<!-- html-lint elem-unknown: maybe, nope: on --></p>")
	require.Len(t, got, 2)

	require.Equal(t, ConfigUnknownValue, got[0].Code())
	require.Equal(t, Context{"directive": "elem-unknown", "value": "maybe"}, got[0].Context())
	require.Equal(t, `Unknown value "maybe" for directive "elem-unknown"`, got[0].Message())
	require.Equal(t, Position{Offset: 4, Line: 2, Column: 1}, got[0].Position())

	require.Equal(t, ConfigUnknownDirective, got[1].Code())
	require.Equal(t, `Unknown directive "nope"`, got[1].Message())
}

func TestDirectives_ResetPerDocument(t *testing.T) {
	l := newLinter(t, WithRules(fragmentRules()))
	l.BeginDocument("a.html")
	require.NoError(t, l.Parse(strings.NewReader(`<!-- html-lint all: off --><blink></blink>`)))
	require.Zero(t, l.Len())

	l.BeginDocument("b.html")
	require.NoError(t, l.Parse(strings.NewReader(`<blink></blink>`)))
	require.Equal(t, []Code{ElemUnknown}, codesOf(l.Errors()))
}

func TestParseSwitch(t *testing.T) {
	for _, v := range []string{"on", "ON", "1", "true", "Yes"} {
		on, ok := parseSwitch(v)
		require.True(t, ok, v)
		require.True(t, on, v)
	}
	for _, v := range []string{"off", "Off", "0", "false", "no"} {
		on, ok := parseSwitch(v)
		require.True(t, ok, v)
		require.False(t, on, v)
	}
	_, ok := parseSwitch("")
	require.False(t, ok)
}
