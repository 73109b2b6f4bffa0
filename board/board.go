// Package board implements the Reversi grid and its capture rules.
package board

import (
	"errors"
	"fmt"
)

// Size limits accepted by New and NewEmpty
const (
	MinSize = 2
	MaxSize = 26
)

// ErrInvalidSize is returned for dimensions outside [MinSize, MaxSize]
var ErrInvalidSize = errors.New("invalid board size")

// Board is a fixed-size grid of cells stored row-major
type Board struct {
	width  int
	height int
	cells  []Cell // cells[y*width + x]
}

// NewEmpty creates a board with every cell empty
func NewEmpty(width, height int) (*Board, error) {
	if width < MinSize || width > MaxSize || height < MinSize || height > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d (allowed %d..%d)", ErrInvalidSize, width, height, MinSize, MaxSize)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// New creates a board seeded with the four center cells in the alternating pattern
func New(width, height int) (*Board, error) {
	b, err := NewEmpty(width, height)
	if err != nil {
		return nil, err
	}

	cx, cy := width/2, height/2
	b.Set(cx-1, cy-1, Black)
	b.Set(cx, cy-1, White)
	b.Set(cx, cy, Black)
	b.Set(cx-1, cy, White)

	return b, nil
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) addresses a cell
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// index converts a coordinate to a buffer offset, panicking when out of range
func (b *Board) index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("board: position (%d,%d) outside %dx%d", x, y, b.width, b.height))
	}
	return y*b.width + x
}

// Get returns the cell at (x, y). Out-of-range coordinates panic
func (b *Board) Get(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

// Set writes c at (x, y) unconditionally. Out-of-range coordinates and
// unknown cell values panic
func (b *Board) Set(x, y int, c Cell) {
	if !c.Valid() {
		panic(fmt.Sprintf("board: invalid cell value %d", c))
	}
	b.cells[b.index(x, y)] = c
}

// Count returns how many cells hold c
func (b *Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Full reports whether no empty cell remains
func (b *Board) Full() bool {
	return b.Count(Empty) == 0
}

// Clone returns an independent copy
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

// String renders the board one row per line using Cell.String
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			buf = append(buf, b.Get(x, y).String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
