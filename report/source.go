package report

import (
	"bytes"
)

// Line is a numbered line of a document.
type Line struct {
	Number int
	Text   string
}

// SourceContext returns line of src with up to n lines before and after it.
// Line numbers are 1-based. It returns nil if line is out of range.
func SourceContext(src []byte, line, n int) []Line {
	all := bytes.Split(src, []byte("\n"))
	if line < 1 || line > len(all) {
		return nil
	}
	first := max(line-n, 1)
	last := min(line+n, len(all))

	out := make([]Line, 0, last-first+1)
	for i := first; i <= last; i++ {
		text := bytes.TrimSuffix(all[i-1], []byte("\r"))
		out = append(out, Line{Number: i, Text: string(text)})
	}
	return out
}
