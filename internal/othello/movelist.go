package othello

// MaxMoves bounds a move list. 33 is the largest number of legal moves
// known to occur in a position reachable from the opening; only hand-made
// grids can have more.
const MaxMoves = 33

// MoveList is a fixed-capacity, ordered list of destination squares.
type MoveList struct {
	Squares [MaxMoves]int8
	N       int
}

// Fill replaces the list with the squares set in moves, lowest first.
// Squares past MaxMoves are dropped; that needs a grid no game can reach.
func (l *MoveList) Fill(moves uint64) {
	l.N = 0
	for m := moves; m != 0 && l.N < MaxMoves; m &= m - 1 {
		l.Squares[l.N] = int8(BitIndex(m))
		l.N++
	}
}

// Generate fills the list with the legal moves of s in p.
func (l *MoveList) Generate(p *Position, s Side) {
	l.Fill(p.Legal(s))
}

func (l *MoveList) Len() int { return l.N }

func (l *MoveList) At(i int) int { return int(l.Squares[i]) }

func (l *MoveList) IndexOf(sq int) int {
	for i := 0; i < l.N; i++ {
		if int(l.Squares[i]) == sq {
			return i
		}
	}
	return -1
}

func (l *MoveList) Contains(sq int) bool { return l.IndexOf(sq) >= 0 }

// Promote moves the hinted squares to the front in hint order. Hints that
// are not in the list (or NoSquare) are skipped; the rest keep their order.
func (l *MoveList) Promote(hints ...int8) {
	front := 0
	for _, h := range hints {
		if h == NoSquare {
			continue
		}
		i := l.IndexOf(int(h))
		if i < front {
			continue
		}
		copy(l.Squares[front+1:i+1], l.Squares[front:i])
		l.Squares[front] = h
		front++
	}
}

func (l *MoveList) Bits() uint64 {
	var b uint64
	for i := 0; i < l.N; i++ {
		b |= bitOf(int(l.Squares[i]))
	}
	return b
}

func (l *MoveList) Slice() []int {
	out := make([]int, l.N)
	for i := range out {
		out[i] = int(l.Squares[i])
	}
	return out
}
