package board

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is the parent of every placement rejection
var ErrIllegalMove = errors.New("illegal move")

// Placement rejections; both match ErrIllegalMove via errors.Is
var (
	ErrOccupied  = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrNoCapture = fmt.Errorf("%w: placement captures nothing", ErrIllegalMove)
)

// Place puts c at (x, y) and flips every flanked opponent cell.
// It returns the number of flipped cells, excluding the placed one.
// The board is left untouched when an error is returned
func (b *Board) Place(x, y int, c Cell) (int, error) {
	if c == Empty || !c.Valid() {
		panic(fmt.Sprintf("board: cannot place cell value %d", c))
	}
	if b.Get(x, y) != Empty {
		return 0, ErrOccupied
	}

	captured := b.Captures(x, y, c)
	if len(captured) == 0 {
		return 0, ErrNoCapture
	}

	for _, p := range captured {
		b.Set(p.X, p.Y, c)
	}
	b.Set(x, y, c)

	return len(captured), nil
}

// Captures returns the cells that placing c at (x, y) would flip, in
// Directions order. An empty result means the placement is illegal
func (b *Board) Captures(x, y int, c Cell) []Position {
	if b.Get(x, y) != Empty {
		return nil
	}

	var captured []Position
	for _, d := range Directions {
		captured = b.scan(captured, c, x, y, d)
	}
	if len(captured) == 0 {
		return nil
	}
	return captured
}

// scan walks from (x, y) along d, appending the opponent run to dst only when
// a friendly cell closes it
func (b *Board) scan(dst []Position, friend Cell, x, y int, d Direction) []Position {
	nx, ny := x+d.DX, y+d.DY
	if !b.InBounds(nx, ny) {
		return dst
	}
	// Adjacent empty or friendly: nothing to flank
	if adj := b.Get(nx, ny); adj == Empty || adj == friend {
		return dst
	}

	mark := len(dst)
	for b.InBounds(nx, ny) {
		switch b.Get(nx, ny) {
		case friend:
			return dst
		case Empty:
			return dst[:mark]
		default:
			dst = append(dst, Position{nx, ny})
		}
		nx += d.DX
		ny += d.DY
	}

	// Ran off the board without a flank
	return dst[:mark]
}

// HasLegalMove reports whether any empty cell yields a capture for c
func (b *Board) HasLegalMove(c Cell) bool {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Get(x, y) == Empty && len(b.Captures(x, y, c)) > 0 {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every legal placement for c in row-major order
func (b *Board) LegalMoves(c Cell) []Position {
	var moves []Position
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Get(x, y) == Empty && len(b.Captures(x, y, c)) > 0 {
				moves = append(moves, Position{x, y})
			}
		}
	}
	return moves
}
