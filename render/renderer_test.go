package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reversi/board"
	"github.com/lixenwraith/reversi/game"
	"github.com/lixenwraith/reversi/input"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(60, 20)
	t.Cleanup(screen.Fini)
	return screen
}

// row reads back line y with trailing blanks removed
func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func styleAt(screen tcell.Screen, x, y int) tcell.Style {
	_, _, style, _ := screen.GetContent(x, y)
	return style
}

func TestDrawOpening(t *testing.T) {
	screen := newScreen(t)
	g, _ := game.New(game.DefaultOptions())
	r := NewRenderer(screen, DefaultGlyphs())

	r.Draw(g)

	want := map[int]string{
		0: ". . . . . . . .",
		3: ". . . □ ■ . . .",
		4: ". . . ■ □ . . .",
		8: "□: 2, ■: 2",
		9: "□'s Turn.",
	}
	for y, line := range want {
		if got := row(screen, y); got != line {
			t.Errorf("row %d: expected %q, got %q", y, line, got)
		}
	}
	if got := row(screen, 12); got != helpPlaying {
		t.Errorf("expected help line, got %q", got)
	}

	_, _, attrs := styleAt(screen, 0, 0).Decompose()
	if attrs&tcell.AttrReverse == 0 {
		t.Error("expected cursor cell in reverse video")
	}
	_, _, attrs = styleAt(screen, 2, 0).Decompose()
	if attrs&tcell.AttrReverse != 0 {
		t.Error("non-cursor cell drawn in reverse video")
	}
}

func TestDrawMessageAndTurn(t *testing.T) {
	screen := newScreen(t)
	g, _ := game.New(game.DefaultOptions())
	r := NewRenderer(screen, DefaultGlyphs())

	g.Handle(input.IntentConfirm) // (0,0) captures nothing
	r.Draw(g)
	if got := row(screen, 10); got != "Cannot place a piece here!" {
		t.Errorf("expected rejection message, got %q", got)
	}

	g.SetCursor(2, 4)
	g.Handle(input.IntentConfirm)
	r.Draw(g)
	if got := row(screen, 4); got != ". . □ □ □ . . ." {
		t.Errorf("expected flipped row, got %q", got)
	}
	if got := row(screen, 9); got != "■'s Turn." {
		t.Errorf("expected White's turn, got %q", got)
	}
	if got := row(screen, 10); got != "" {
		t.Errorf("expected message cleared, got %q", got)
	}
}

func TestDrawHints(t *testing.T) {
	screen := newScreen(t)
	g, _ := game.New(game.Options{Width: 8, Height: 8, Hints: true})
	r := NewRenderer(screen, DefaultGlyphs())

	r.Draw(g)

	hint := RGBToTcell(RgbHint.Scale(0.8))
	for _, p := range g.LegalMoves() {
		fgColor, _, _ := styleAt(screen, p.X*2, p.Y).Decompose()
		if fgColor != hint {
			t.Errorf("legal move %v not marked", p)
		}
	}
	fgColor, _, _ := styleAt(screen, 2, 1).Decompose()
	if fgColor == hint {
		t.Error("illegal cell marked as hint")
	}
}

func TestDrawGameOver(t *testing.T) {
	screen := newScreen(t)
	b, _ := board.New(2, 2)
	b.Set(0, 0, board.White)
	g, _ := game.NewWithBoard(b, game.DefaultOptions())
	r := NewRenderer(screen, DefaultGlyphs())

	r.Draw(g)

	if got := row(screen, 3); got != "■ is the winner!" {
		t.Errorf("expected winner line, got %q", got)
	}
	if got := row(screen, 6); got != helpFinished {
		t.Errorf("expected finished help, got %q", got)
	}
	_, _, attrs := styleAt(screen, 0, 0).Decompose()
	if attrs&tcell.AttrReverse != 0 {
		t.Error("cursor drawn after game over")
	}
}

func TestOutcomeLineDraw(t *testing.T) {
	glyphs := DefaultGlyphs()
	if got := glyphs.OutcomeLine(game.Outcome{Draw: true}); got != "It's a draw!" {
		t.Errorf("unexpected draw line %q", got)
	}
	if got := glyphs.OutcomeLine(game.Outcome{Winner: game.Black}); got != "□ is the winner!" {
		t.Errorf("unexpected winner line %q", got)
	}
}

func TestDrawWideGlyphsKeepSpacer(t *testing.T) {
	screen := newScreen(t)
	g, _ := game.New(game.DefaultOptions())
	glyphs := Glyphs{Empty: '.', Black: '黒', White: '白'}
	r := NewRenderer(screen, glyphs)

	r.Draw(g)

	// Two-column glyphs step three columns per cell
	if ch, _, _, _ := screen.GetContent(9, 3); ch != '黒' {
		t.Errorf("expected Black at column 9, got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(12, 3); ch != '白' {
		t.Errorf("expected White at column 12, got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(11, 3); ch != ' ' && ch != 0 {
		t.Errorf("spacer overwritten by %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(3, 0); ch != '.' {
		t.Errorf("expected empty cell at column 3, got %q", ch)
	}
}

func TestGlyphs(t *testing.T) {
	g := Glyphs{Empty: '-', Black: 'x', White: 'o'}
	tests := map[board.Cell]rune{
		board.Empty:    '-',
		board.Black:    'x',
		board.White:    'o',
		board.Cell(42): '?',
	}
	for c, want := range tests {
		if got := g.Of(c); got != want {
			t.Errorf("Of(%d): expected %q, got %q", c, want, got)
		}
	}

	if r, err := ParseGlyph("●"); err != nil || r != '●' {
		t.Errorf("ParseGlyph(●) = %q, %v", r, err)
	}
	for _, bad := range []string{"", "ab"} {
		if _, err := ParseGlyph(bad); err == nil {
			t.Errorf("ParseGlyph(%q): expected error", bad)
		}
	}
}
