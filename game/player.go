package game

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/reversi/board"
)

// Player identifies one side
type Player uint8

const (
	Black Player = iota
	White
)

// Cell returns the board state owned by p
func (p Player) Cell() board.Cell {
	if p == White {
		return board.White
	}
	return board.Black
}

// Other returns the opposing player
func (p Player) Other() Player {
	return 1 - p
}

func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

// ParsePlayer accepts "black" or "white", case-insensitively
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return Black, fmt.Errorf("unknown player %q (want black or white)", s)
}
