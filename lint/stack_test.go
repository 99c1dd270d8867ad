package lint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestElementStack(t *testing.T) {
	var s elementStack
	s.push("html", pos(1, 1))
	s.push("div", pos(2, 1))
	s.push("p", pos(3, 1))
	s.push("div", pos(4, 1))
	s.push("span", pos(5, 1))

	require.Equal(t, 3, s.find("div"), "top-most match")
	require.Equal(t, 0, s.find("html"))
	require.Equal(t, -1, s.find("table"))

	leftovers, ok := s.popBackTo("table")
	require.False(t, ok)
	require.Nil(t, leftovers)
	require.Len(t, s, 5, "no-op when not open")

	leftovers, ok = s.popBackTo("p")
	require.True(t, ok)
	want := []openElement{
		{Tag: "span", Pos: pos(5, 1)},
		{Tag: "div", Pos: pos(4, 1)},
	}
	if diff := cmp.Diff(want, leftovers); diff != "" {
		t.Errorf("leftovers diff (-want +got):\n%s", diff)
	}
	require.Equal(t, elementStack{{"html", pos(1, 1)}, {"div", pos(2, 1)}}, s)

	leftovers, ok = s.popBackTo("div")
	require.True(t, ok)
	require.Empty(t, leftovers)

	require.Equal(t, elementStack{{"html", pos(1, 1)}}, s)

	s.reset()
	require.Empty(t, s)
	_, ok = s.popBackTo("html")
	require.False(t, ok)
}
