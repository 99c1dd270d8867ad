package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dpotapov/go-htmllint/lint"
	"github.com/dpotapov/go-htmllint/lint/rules"
)

const sample = "<div><span></div>\n<img src=a.png>"

// lintDocs lints each file/source pair in order with one linter.
func lintDocs(t *testing.T, docs ...string) []*lint.Error {
	t.Helper()
	r := rules.Default().Clone()
	r.Required = rules.NewSet()
	l, err := lint.New(lint.WithRules(r))
	require.NoError(t, err)
	for i := 0; i+1 < len(docs); i += 2 {
		l.BeginDocument(docs[i])
		require.NoError(t, l.Parse(strings.NewReader(docs[i+1])))
	}
	return l.Errors()
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, lintDocs(t, "a.html", sample)))

	want := "a.html (1:12) <span> at (1:6) is never closed\n" +
		"a.html (2:1) <img src=\"a.png\"> tag has no HEIGHT and WIDTH attributes\n" +
		"a.html (2:1) <img src=\"a.png\"> does not have ALT text defined\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteText diff (-want +got):\n%s", diff)
	}
}

func TestWriteTextContext(t *testing.T) {
	errs := lintDocs(t, "a.html", sample)[:1]

	var buf bytes.Buffer
	require.NoError(t, WriteTextContext(&buf, errs, map[string][]byte{"a.html": []byte(sample)}, 1))

	want := "a.html (1:12) <span> at (1:6) is never closed\n" +
		"  1 | <div><span></div>\n" +
		"    | " + strings.Repeat(" ", 11) + "^\n" +
		"  2 | <img src=a.png>\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteTextContext diff (-want +got):\n%s", diff)
	}

	buf.Reset()
	require.NoError(t, WriteTextContext(&buf, errs, nil, 1))
	require.Equal(t, "a.html (1:12) <span> at (1:6) is never closed\n", buf.String())
}

func TestIndent(t *testing.T) {
	require.Equal(t, "", indent("abc", 1))
	require.Equal(t, "  ", indent("abc", 3))
	require.Equal(t, "\t ", indent("\tabc", 3))
	require.Equal(t, "  ", indent("é", 3), "past the end of the line")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, lintDocs(t, "a.html", sample+"\n<p>A & B</p>")))
	require.Equal(t, "4 defects: 1 structure, 2 helper, 1 fluff\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteSummary(&buf, nil))
	require.Equal(t, "No defects found.\n", buf.String())
}

func TestSourceContext(t *testing.T) {
	src := []byte("a\r\nb\nc\nd")

	require.Equal(t, []Line{{1, "a"}, {2, "b"}, {3, "c"}}, SourceContext(src, 2, 1))
	require.Equal(t, []Line{{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}}, SourceContext(src, 1, 5))
	require.Equal(t, []Line{{4, "d"}}, SourceContext(src, 4, 0))
	require.Nil(t, SourceContext(src, 0, 1))
	require.Nil(t, SourceContext(src, 5, 1))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, lintDocs(t, "a.html", sample)))

	var got struct {
		Clean  bool
		Counts Counts
		Errors []struct {
			Code     string
			Category string
			File     string
			Line     int
			Column   int
			Context  map[string]string
		}
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.False(t, got.Clean)
	require.Equal(t, Counts{Structure: 1, Helper: 2}, got.Counts)
	require.Len(t, got.Errors, 3)
	require.Equal(t, "elem-unclosed", got.Errors[0].Code)
	require.Equal(t, "STRUCTURE", got.Errors[0].Category)
	require.Equal(t, "a.html", got.Errors[0].File)
	require.Equal(t, 12, got.Errors[0].Column)
	require.Equal(t, map[string]string{"tag": "span", "where": "(1:6)"}, got.Errors[0].Context)

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, nil))
	require.JSONEq(t, `{"clean": true, "counts": {"structure": 0, "helper": 0, "fluff": 0}, "errors": []}`, buf.String())
}

func TestWriteCheckstyle(t *testing.T) {
	errs := lintDocs(t, "a.html", sample, "b.html", "<p>A & B</p>", "c.html", "<p></p>")

	var buf bytes.Buffer
	require.NoError(t, WriteCheckstyle(&buf, errs))
	require.True(t, strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	root := doc.SelectElement("checkstyle")
	require.NotNil(t, root)
	require.Equal(t, "4.3", root.SelectAttrValue("version", ""))

	files := root.SelectElements("file")
	require.Len(t, files, 2, "files without records are not listed")
	require.Equal(t, "a.html", files[0].SelectAttrValue("name", ""))
	require.Equal(t, "b.html", files[1].SelectAttrValue("name", ""))

	var severities []string
	for _, el := range files[0].SelectElements("error") {
		severities = append(severities, el.SelectAttrValue("severity", ""))
	}
	require.Equal(t, []string{"error", "warning", "warning"}, severities)

	first := files[0].SelectElement("error")
	require.Equal(t, "1", first.SelectAttrValue("line", ""))
	require.Equal(t, "12", first.SelectAttrValue("column", ""))
	require.Equal(t, "<span> at (1:6) is never closed", first.SelectAttrValue("message", ""))
	require.Equal(t, "htmllint.elem-unclosed", first.SelectAttrValue("source", ""))

	fluff := files[1].SelectElement("error")
	require.Equal(t, "info", fluff.SelectAttrValue("severity", ""))
}
