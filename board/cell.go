package board

import "fmt"

// Cell is the occupant of a board position
type Cell uint8

const (
	Empty Cell = iota
	Black      // moves first
	White
)

// Valid reports whether c is one of the three defined states
func (c Cell) Valid() bool {
	return c <= White
}

// Opponent returns the other player's cell. Empty has no opponent and panics
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		panic(fmt.Sprintf("board: cell %d has no opponent", c))
	}
}

// String returns a single ASCII letter, used for debugging and test fixtures
func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return "?"
	}
}

// Position identifies a cell by column and row
type Position struct {
	X, Y int
}

// Direction is one of the eight compass offsets
type Direction struct {
	DX, DY int
}

// Directions lists the scan order: row-major over dy, then dx, skipping (0,0)
var Directions = [8]Direction{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
