package lint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	for _, c := range []Category{Structure, Helper, Fluff} {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var got Category
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, c, got)
	}

	c, err := ParseCategory("helper")
	require.NoError(t, err)
	require.Equal(t, Helper, c)

	_, err = ParseCategory("minor")
	require.EqualError(t, err, `unknown category "minor"`)

	_, err = Category(7).MarshalText()
	require.Error(t, err)
	require.Equal(t, "Category(7)", Category(7).String())
}

func TestCodes(t *testing.T) {
	all := Codes()
	require.Len(t, all, 16)
	require.Contains(t, all, ConfigUnknownValue)

	c, ok := CategoryOf(ElemImgAltMissing)
	require.True(t, ok)
	require.Equal(t, Helper, c)

	_, ok = CategoryOf("nope")
	require.False(t, ok)
}

func TestError(t *testing.T) {
	e := newError(codes[ElemUnclosed], ElemUnclosed, "test.html",
		Position{Offset: 11, Line: 1, Column: 12}, Context{"tag": "span", "where": "(1:6)"})

	require.Equal(t, "test.html (1:12) <span> at (1:6) is never closed", e.Error())
	require.Equal(t, "(1:12)", e.Where())
	require.Equal(t, Structure, e.Category())

	ctx := e.Context()
	ctx["tag"] = "div"
	require.Equal(t, "span", e.ContextValue("tag"), "context is copied")

	anon := newError(codes[TextUseEntity], TextUseEntity, "", Position{Line: 2, Column: 3},
		Context{"char": "&", "entity": "&amp;"})
	require.Equal(t, `(2:3) Character "&" should be written as &amp;`, anon.Error())
}

func TestError_JSON(t *testing.T) {
	e := newError(codes[AttrRepeated], AttrRepeated, "a.html",
		Position{Offset: 40, Line: 3, Column: 5}, Context{"tag": "p", "attr": "id"})

	got, err := json.Marshal(e)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"code": "attr-repeated",
		"category": "STRUCTURE",
		"file": "a.html",
		"line": 3,
		"column": 5,
		"message": "<p> attribute \"id\" is repeated",
		"context": {"tag": "p", "attr": "id"}
	}`, string(got))
}

func TestSink(t *testing.T) {
	structural := newError(codes[ElemUnknown], ElemUnknown, "", Position{}, Context{"tag": "x"})
	fluff := newError(codes[TextUseEntity], TextUseEntity, "", Position{}, Context{})

	var s Sink
	require.True(t, s.Accepts(Fluff))
	require.True(t, s.Add(structural))
	require.True(t, s.Add(fluff))
	require.Equal(t, 2, s.Len())

	s.SetFilter(Structure, Helper)
	require.False(t, s.Accepts(Fluff))
	require.False(t, s.Add(fluff))
	require.True(t, s.Add(structural))
	require.Equal(t, []*Error{structural, fluff, structural}, s.Errors())

	errs := s.Errors()
	errs[0] = nil
	require.NotNil(t, s.Errors()[0], "Errors returns a copy")

	s.Clear()
	require.Zero(t, s.Len())
	require.False(t, s.Accepts(Fluff), "filter survives Clear")

	s.SetFilter()
	require.True(t, s.Add(fluff))
}
