package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dpotapov/go-htmllint/lint"
)

// WriteText writes one record per line, as "file (line:column) message".
func WriteText(w io.Writer, errs []*lint.Error) error {
	for _, e := range errs {
		if _, err := fmt.Fprintln(w, e.Error()); err != nil {
			return err
		}
	}
	return nil
}

// WriteTextContext is like WriteText, but follows each record with n lines of
// source before and after it and a caret under the reported column. sources maps
// the file labels of errs to the document contents; records of unknown files get
// no excerpt.
func WriteTextContext(w io.Writer, errs []*lint.Error, sources map[string][]byte, n int) error {
	for _, e := range errs {
		if _, err := fmt.Fprintln(w, e.Error()); err != nil {
			return err
		}
		src, ok := sources[e.File()]
		if !ok {
			continue
		}
		lines := SourceContext(src, e.Line(), n)
		if len(lines) == 0 {
			continue
		}
		var sb strings.Builder
		width := len(fmt.Sprint(lines[len(lines)-1].Number))
		for _, l := range lines {
			fmt.Fprintf(&sb, "  %*d | %s\n", width, l.Number, l.Text)
			if l.Number == e.Line() {
				fmt.Fprintf(&sb, "  %*s | %s^\n", width, "", indent(l.Text, e.Column()))
			}
		}
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// indent returns the whitespace that lines up with column col of text. Tabs are
// kept so that the caret lands under the same character.
func indent(text string, col int) string {
	var sb strings.Builder
	i := 1
	for _, r := range text {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		sb.WriteByte(' ')
	}
	return sb.String()
}
