// Package game drives a Reversi match: turn order, cursor, scores and the
// end-of-game decision. It holds no terminal state.
package game

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/reversi/board"
	"github.com/lixenwraith/reversi/input"
)

// State is the controller's position in its state machine
type State uint8

const (
	AwaitingInput State = iota
	GameOver            // Natural end, outcome available
	Quit                // User exit, distinct from GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case GameOver:
		return "game-over"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("State(%d)", s)
}

// Options configures a new game
type Options struct {
	Width, Height int
	Rule          EndRule
	First         Player
	Hints         bool
}

// DefaultOptions is a standard 8x8 game, Black first
func DefaultOptions() Options {
	return Options{Width: 8, Height: 8, Rule: RulePass, First: Black}
}

// Result reports what a single Handle call did
type Result struct {
	Intent   input.Intent
	Player   Player         // Player who acted
	Pos      board.Position // Cursor at the time of the intent
	Placed   bool
	Captured int
	Err      error // Legality rejection, nil otherwise
	Passed   bool  // The opponent was stuck and the turn came back
	Ended    bool  // This intent moved the game to GameOver
}

// Game is the turn controller. It is not safe for concurrent use
type Game struct {
	board   *board.Board
	rule    EndRule
	state   State
	current Player
	cursor  board.Position
	scores  [2]int
	moves   int
	message string
	hints   bool
}

// New creates a seeded board and a game awaiting the first move
func New(opts Options) (*Game, error) {
	b, err := board.New(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	return NewWithBoard(b, opts)
}

// NewWithBoard starts a game on an existing position. Width and Height in
// opts are ignored. Scores are taken from the board's cell counts
func NewWithBoard(b *board.Board, opts Options) (*Game, error) {
	if opts.First != Black && opts.First != White {
		return nil, fmt.Errorf("invalid first player %d", opts.First)
	}
	if opts.Rule != RulePass && opts.Rule != RuleStrict {
		return nil, fmt.Errorf("invalid end rule %d", opts.Rule)
	}

	g := &Game{
		board:   b,
		rule:    opts.Rule,
		current: opts.First,
		hints:   opts.Hints,
		scores:  [2]int{b.Count(board.Black), b.Count(board.White)},
	}

	// A position where the first player is already stuck resolves immediately
	g.settleTurn(opts.First.Other())

	return g, nil
}

// Handle applies one intent. Intents arriving after GameOver or Quit are ignored
func (g *Game) Handle(in input.Intent) Result {
	res := Result{Intent: in, Player: g.current, Pos: g.cursor}
	if g.state != AwaitingInput {
		return res
	}

	g.message = ""

	switch {
	case in.IsMotion():
		g.MoveCursor(in.Delta())

	case in == input.IntentConfirm:
		g.confirm(&res)

	case in == input.IntentQuit:
		g.state = Quit

	case in == input.IntentHint:
		g.hints = !g.hints
	}

	return res
}

// MoveCursor shifts the cursor, clamping to the board
func (g *Game) MoveCursor(dx, dy int) {
	g.cursor.X = clamp(g.cursor.X+dx, 0, g.board.Width()-1)
	g.cursor.Y = clamp(g.cursor.Y+dy, 0, g.board.Height()-1)
}

// SetCursor places the cursor at (x, y), clamped to the board
func (g *Game) SetCursor(x, y int) {
	g.cursor = board.Position{}
	g.MoveCursor(x, y)
}

func (g *Game) confirm(res *Result) {
	mover := g.current
	n, err := g.board.Place(g.cursor.X, g.cursor.Y, mover.Cell())
	if err != nil {
		res.Err = err
		g.message = rejectionMessage(err)
		return
	}

	res.Placed = true
	res.Captured = n
	g.moves++
	g.scores[mover] += n + 1
	g.scores[mover.Other()] -= n

	g.current = mover.Other()
	res.Passed = g.settleTurn(mover)
	res.Ended = g.state == GameOver
}

// settleTurn applies the end rule after mover played and g.current became due.
// It reports whether the turn was passed back to mover
func (g *Game) settleTurn(mover Player) bool {
	if g.board.HasLegalMove(g.current.Cell()) {
		return false
	}

	if g.rule == RulePass && g.board.HasLegalMove(mover.Cell()) {
		g.message = fmt.Sprintf("%s has no legal move, %s plays again.", title(g.current), title(mover))
		g.current = mover
		return true
	}

	g.state = GameOver
	return false
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, board.ErrOccupied):
		return "Cell is already occupied!"
	case errors.Is(err, board.ErrNoCapture):
		return "Cannot place a piece here!"
	}
	return err.Error()
}

// Board exposes the position for rendering. Callers must not mutate it
func (g *Game) Board() *board.Board {
	return g.board
}

// State returns the controller state
func (g *Game) State() State {
	return g.state
}

// Rule returns the active end rule
func (g *Game) Rule() EndRule {
	return g.rule
}

// Current returns the player due to move
func (g *Game) Current() Player {
	return g.current
}

// Cursor returns the highlighted cell, always in bounds
func (g *Game) Cursor() board.Position {
	return g.cursor
}

// Score returns p's running tally
func (g *Game) Score(p Player) int {
	return g.scores[p]
}

// Moves returns the number of successful placements
func (g *Game) Moves() int {
	return g.moves
}

// Message returns the transient text produced by the last intent, if any
func (g *Game) Message() string {
	return g.message
}

// Hints reports whether legal-move markers are enabled
func (g *Game) Hints() bool {
	return g.hints
}

// LegalMoves lists the current player's legal placements
func (g *Game) LegalMoves() []board.Position {
	if g.state != AwaitingInput {
		return nil
	}
	return g.board.LegalMoves(g.current.Cell())
}

// Outcome is the final standing by cell count
type Outcome struct {
	Black, White int
	Winner       Player
	Draw         bool
}

// Outcome counts cells per player. Valid at any time, final once GameOver
func (g *Game) Outcome() Outcome {
	o := Outcome{
		Black: g.board.Count(board.Black),
		White: g.board.Count(board.White),
	}
	switch {
	case o.Black > o.White:
		o.Winner = Black
	case o.White > o.Black:
		o.Winner = White
	default:
		o.Draw = true
	}
	return o
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func title(p Player) string {
	if p == White {
		return "White"
	}
	return "Black"
}
