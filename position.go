package engine

import (
	"fmt"
	"unicode/utf8"
)

// Position is a human-readable location of a byte offset in a text.
type Position struct {
	Offset int // byte offset, as returned by the searches
	Line   int // 1-based
	Column int // 1-based, counted in runes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate converts a byte offset into a line and rune column. Offsets outside
// [0, len(text)] are clamped.
func Locate(text []byte, offset int) Position {
	offset = max(0, min(offset, len(text)))
	pos := Position{Offset: offset, Line: 1, Column: 1}
	for i := 0; i < offset; {
		if text[i] == '\n' {
			pos.Line++
			pos.Column = 1
			i++
			continue
		}
		_, size := utf8.DecodeRune(text[i:]) // invalid bytes count as one column each
		i += size
		pos.Column++
	}
	return pos
}
