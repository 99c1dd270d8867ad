package lint

import (
	"io"

	"golang.org/x/net/html"
	a "golang.org/x/net/html/atom"
)

// A tokenizer turns the tokens of golang.org/x/net/html into Handler events. It does
// not build a tree and does not apply the HTML5 tree construction rules: end tags are
// reported as written so that mismatched nesting can be detected.
type tokenizer struct {
	// z provides the tokens.
	z *html.Tokenizer
	// h receives the events.
	h Handler
	// pos is the position of the next token.
	pos Position
}

// Tokenize reads an HTML document from r and delivers its events to h, from
// StartDocument to EndDocument. It returns the tokenizer's error, if any; the
// document is then incomplete and EndDocument is not called.
// maxBuf limits the tokenizer's buffer when positive.
func Tokenize(r io.Reader, h Handler, maxBuf int) error {
	t := &tokenizer{
		z:   html.NewTokenizer(r),
		h:   h,
		pos: Position{Line: 1, Column: 1},
	}
	if maxBuf > 0 {
		t.z.SetMaxBuf(maxBuf)
	}
	return t.run()
}

func (t *tokenizer) run() error {
	t.h.StartDocument()
	for {
		tt := t.z.Next()
		if tt == html.ErrorToken {
			if err := t.z.Err(); err != io.EOF {
				return err
			}
			t.h.EndDocument(t.pos)
			return nil
		}

		// Raw is only valid until the next call to Next.
		raw := t.z.Raw()
		pos := t.pos
		t.pos = t.pos.advance(raw)

		switch tt {
		case html.TextToken:
			t.h.Text(pos, string(raw))
		case html.StartTagToken, html.SelfClosingTagToken:
			name, attrs := t.readTag()
			t.h.OpenTag(pos, name, attrs)
			if tt == html.SelfClosingTagToken {
				t.h.CloseTag(pos, name, false)
			} else if a.Lookup([]byte(name)) == a.Noscript {
				// Don't let the tokenizer go into raw text mode for <noscript>, its
				// contents are regular HTML.
				t.z.NextIsNotRawText()
			}
		case html.EndTagToken:
			name, _ := t.z.TagName()
			t.h.CloseTag(pos, string(name), true)
		case html.CommentToken:
			t.h.Comment(pos, string(t.z.Text()))
		case html.DoctypeToken:
			// Nothing to validate.
		}
	}
}

// readTag returns the lower-cased name and the attributes of the current tag token,
// in the order they were written. Repeated attributes are kept.
func (t *tokenizer) readTag() (string, []Attr) {
	name, more := t.z.TagName()
	var attrs []Attr
	for more {
		var key, val []byte
		key, val, more = t.z.TagAttr()
		attrs = append(attrs, Attr{Key: string(key), Val: string(val)})
	}
	return string(name), attrs
}
