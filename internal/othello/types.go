package othello

import "fmt"

type Side int8

const (
	White Side = 0
	Black Side = 1
	Empty Side = 2 // only used for hashing and features, never a mover
)

func (s Side) Opposite() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "empty"
	}
}

// Position holds one bitmask per side plus the running Zobrist fingerprint.
// Bit index = row*8+col; bit 0 is the top-left square.
type Position struct {
	Bits [2]uint64
	Hash uint64
}

// Move is a (column, row) pair, the shape used by the move protocol.
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func MoveOf(sq int) Move { return Move{X: colOf(sq), Y: rowOf(sq)} }

func (m Move) Square() int { return indexOf(m.Y, m.X) }

func (m Move) OnBoard() bool { return onBoard(m.Y, m.X) }

func (m Move) String() string {
	if !m.OnBoard() {
		return fmt.Sprintf("(%d,%d)", m.X, m.Y)
	}
	return SquareName(m.Square())
}
