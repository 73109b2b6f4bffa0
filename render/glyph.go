package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/reversi/board"
	"github.com/lixenwraith/reversi/game"
)

// Glyphs maps each cell state to its display rune
type Glyphs struct {
	Empty rune
	Black rune
	White rune
}

// DefaultGlyphs uses an outline square for Black and a filled one for White
func DefaultGlyphs() Glyphs {
	return Glyphs{Empty: '.', Black: '□', White: '■'}
}

// Of returns the rune for c. Unknown cells render as '?'
func (g Glyphs) Of(c board.Cell) rune {
	switch c {
	case board.Empty:
		return g.Empty
	case board.Black:
		return g.Black
	case board.White:
		return g.White
	}
	return '?'
}

// OutcomeLine is the end-of-game announcement
func (g Glyphs) OutcomeLine(o game.Outcome) string {
	if o.Draw {
		return "It's a draw!"
	}
	return fmt.Sprintf("%c is the winner!", g.Of(o.Winner.Cell()))
}

// cellWidth is the widest glyph in display columns
func (g Glyphs) cellWidth() int {
	w := 1
	for _, r := range []rune{g.Empty, g.Black, g.White} {
		w = max(w, runewidth.RuneWidth(r))
	}
	return w
}

// ParseGlyph converts a config string holding exactly one rune
func ParseGlyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("glyph %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
