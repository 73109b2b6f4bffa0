// Package render draws the board and turn status onto a tcell screen.
// It reads game state and never mutates it.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/reversi/board"
	"github.com/lixenwraith/reversi/game"
)

const (
	helpPlaying  = "arrows/hjkl move  enter/space place  ? hints  q quit"
	helpFinished = "press any key to exit"
)

// Renderer lays out one frame per Draw call
type Renderer struct {
	screen tcell.Screen
	glyphs Glyphs
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen, glyphs Glyphs) *Renderer {
	return &Renderer{screen: screen, glyphs: glyphs}
}

// Glyphs returns the active cell mapping
func (r *Renderer) Glyphs() Glyphs {
	return r.glyphs
}

// Draw renders g and shows the frame
func (r *Renderer) Draw(g *game.Game) {
	r.screen.Clear()

	b := g.Board()
	r.drawBoard(g, b)

	y := b.Height()
	o := g.Outcome()
	r.text(0, y, fmt.Sprintf("%c: %d, %c: %d",
		r.glyphs.Black, g.Score(game.Black), r.glyphs.White, g.Score(game.White)), fg(RgbBoard))
	y++

	help := helpPlaying
	if g.State() == game.GameOver {
		r.text(0, y, r.glyphs.OutcomeLine(o), fg(RgbWinner).Bold(true))
		help = helpFinished
	} else {
		r.text(0, y, fmt.Sprintf("%c's Turn.", r.glyphs.Of(g.Current().Cell())), fg(RgbBoard))
	}
	y++

	if msg := g.Message(); msg != "" {
		r.text(0, y, msg, fg(RgbMessage))
	}
	y += 2

	r.text(0, y, help, fg(RgbHelp))

	r.screen.Show()
}

func (r *Renderer) drawBoard(g *game.Game, b *board.Board) {
	hints := make(map[board.Position]bool)
	if g.Hints() {
		for _, p := range g.LegalMoves() {
			hints[p] = true
		}
	}

	cursor := g.Cursor()
	showCursor := g.State() == game.AwaitingInput
	// Each cell is followed by a spacer column
	stride := r.glyphs.cellWidth() + 1

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			cell := b.Get(x, y)
			style := r.cellStyle(cell)
			if hints[board.Position{X: x, Y: y}] {
				style = fg(RgbHint.Scale(0.8))
			}
			if showCursor && cursor.X == x && cursor.Y == y {
				style = style.Reverse(true)
			}
			r.screen.SetContent(x*stride, y, r.glyphs.Of(cell), nil, style)
		}
	}
}

func (r *Renderer) cellStyle(c board.Cell) tcell.Style {
	switch c {
	case board.Black:
		return fg(RgbBlack).Bold(true)
	case board.White:
		return fg(RgbWhite).Bold(true)
	}
	return fg(RgbBoard)
}

// text writes s starting at (x, y), advancing by display width
func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
}

func fg(c RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(RGBToTcell(c))
}
