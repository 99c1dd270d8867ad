package rules

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r := Default()
	require.Same(t, r, Default())

	require.True(t, r.IsKnown("img"))
	require.False(t, r.IsKnown("blink"))

	require.True(t, r.IsKnownAttr("img", "src"))
	require.True(t, r.IsKnownAttr("img", "class"), "global attribute")
	require.True(t, r.IsKnownAttr("div", "data-id"), "data- prefix")
	require.False(t, r.IsKnownAttr("div", "data-"), "bare prefix")
	require.False(t, r.IsKnownAttr("div", "src"))

	require.Equal(t, []string{"body", "head", "html", "title"}, r.Required.Sorted())
	require.True(t, r.Nonrepeatable.Has("title"))
	require.True(t, r.OptionalEnd.Has("p"))
	require.True(t, r.Empty.Has("br"))
	require.False(t, r.Empty.Has("div"))

	for _, name := range r.Empty.Sorted() {
		require.True(t, r.IsKnown(name), "empty element %s must be known", name)
	}
}

func TestEntities(t *testing.T) {
	r := Default()
	require.Len(t, r.Entities, 253)
	require.True(t, r.IsEntity("amp"))
	require.False(t, r.IsEntity("amp;"))

	name, ok := r.EntityFor('é')
	require.True(t, ok)
	require.Equal(t, "eacute", name)

	name, ok = r.EntityFor('€')
	require.True(t, ok)
	require.Equal(t, "euro", name)

	_, ok = r.EntityFor('☺')
	require.False(t, ok)

	names := r.EntityNames()
	require.Equal(t, "AElig", names[0])
	require.IsNonDecreasing(t, names)
}

func TestClone(t *testing.T) {
	c := Default().Clone()
	c.Required.remove("title")
	c.Elements["div"].add("src")
	c.Entities["smile"] = '☺'
	c.index()

	require.False(t, c.Required.Has("title"))
	require.True(t, Default().Required.Has("title"))
	require.False(t, Default().IsKnownAttr("div", "src"))
	require.False(t, Default().IsEntity("smile"))

	name, ok := c.EntityFor('☺')
	require.True(t, ok)
	require.Equal(t, "smile", name)
}

func TestLoad(t *testing.T) {
	src := `
elements:
  My-Widget: [Src, mode]
  div: [src]
remove-elements: [center]
global-attributes: [hx-get]
attribute-prefixes: [x-]
required:
  remove: [title]
nonrepeatable:
  add: [main]
empty:
  add: [my-icon]
entities:
  smile: 0x263A
checks:
  - element: A
    when: 'attr("target") == "_blank" && !has("rel")'
    code: elemARelMissing
    category: helper
    message: 'target without rel'
`
	r, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	require.True(t, r.IsKnown("my-widget"))
	require.True(t, r.IsKnownAttr("my-widget", "src"))
	require.True(t, r.IsKnownAttr("div", "src"))
	require.False(t, r.IsKnown("center"))
	require.True(t, r.IsKnownAttr("p", "hx-get"))
	require.True(t, r.IsKnownAttr("p", "x-data"))
	require.False(t, r.Required.Has("title"))
	require.True(t, r.Nonrepeatable.Has("main"))
	require.True(t, r.Empty.Has("my-icon"))
	require.True(t, r.IsEntity("smile"))

	want := []CheckSpec{{
		Element:  "a",
		When:     `attr("target") == "_blank" && !has("rel")`,
		Code:     "elem-a-rel-missing",
		Category: "helper",
		Message:  "target without rel",
	}}
	if diff := cmp.Diff(want, r.Checks); diff != "" {
		t.Errorf("Checks diff (-want +got):\n%s", diff)
	}

	// the defaults stay untouched
	require.True(t, Default().IsKnown("center"))
	require.True(t, Default().Required.Has("title"))
}

func TestLoad_Empty(t *testing.T) {
	r, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, len(Default().Elements), len(r.Elements))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown field", "elementz: {}"},
		{"bad yaml", "elements: [\n"},
		{"incomplete check", "checks:\n  - element: a\n"},
		{"empty entity", "entities: {'&;': 65}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			require.Error(t, err)
			var le *LoadError
			require.True(t, errors.As(err, &le))
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("required: {add: [main]}\n"), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	require.True(t, r.Required.Has("main"))

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	require.Equal(t, filepath.Join(dir, "missing.yaml"), le.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCodeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"elem-a-rel-missing", "elem-a-rel-missing"},
		{"elemARelMissing", "elem-a-rel-missing"},
		{"elem_a_rel_missing", "elem-a-rel-missing"},
		{"ImgLazyLoading", "img-lazy-loading"},
		{"h1Missing", "h1-missing"},
		{"doc--double_", "doc-double"},
		{"HTMLVersion", "html-version"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CodeName(tt.in), tt.in)
	}
}
