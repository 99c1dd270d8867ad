package lint

import "strconv"

// Position is a location in a document.
type Position struct {
	Offset int // Byte offset in the document
	Line   int // 1-based line number
	Column int // 1-based column number (in runes, not bytes)
}

// IsZero returns true if the position is uninitialized.
func (p Position) IsZero() bool {
	return p.Offset == 0 && p.Line == 0 && p.Column == 0
}

// String renders the position as "(line:column)".
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column) + ")"
}

// advance moves p past raw, counting lines and runes.
func (p Position) advance(raw []byte) Position {
	for _, b := range raw {
		p.Offset++
		switch {
		case b == '\n':
			p.Line++
			p.Column = 1
		case b&0xC0 != 0x80: // first byte of a rune
			p.Column++
		}
	}
	return p
}
