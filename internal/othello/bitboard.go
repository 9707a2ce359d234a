package othello

import "math/bits"

const (
	// Opponent stones on column a or h can never sit inside a run that
	// moves horizontally, so they are masked out before any fill with a
	// horizontal component. This is what stops runs wrapping between rows.
	interiorCols uint64 = 0x7E7E7E7E7E7E7E7E
	allSquares   uint64 = 0xFFFFFFFFFFFFFFFF

	notColA uint64 = 0xFEFEFEFEFEFEFEFE
	notColH uint64 = 0x7F7F7F7F7F7F7F7F

	Corners uint64 = 0x8100000000000081
)

// Moves returns every empty square where mine can play against theirs.
func Moves(mine, theirs uint64) uint64 {
	empty := ^(mine | theirs)
	h := theirs & interiorCols

	return fillDown(mine, h, empty, 1) | // right
		fillDown(mine, h, empty, 7) | // down-left
		fillDown(mine, theirs, empty, 8) | // down
		fillDown(mine, h, empty, 9) | // down-right
		fillUp(mine, h, empty, 1) | // left
		fillUp(mine, h, empty, 7) | // up-right
		fillUp(mine, theirs, empty, 8) | // up
		fillUp(mine, h, empty, 9) // up-left
}

// Run length on an 8-wide board is at most 6, hence seed + 5 more steps.
func fillDown(mine, theirs, target uint64, n uint) uint64 {
	x := (mine << n) & theirs
	x |= (x << n) & theirs
	x |= (x << n) & theirs
	x |= (x << n) & theirs
	x |= (x << n) & theirs
	x |= (x << n) & theirs
	return (x << n) & target
}

func fillUp(mine, theirs, target uint64, n uint) uint64 {
	x := (mine >> n) & theirs
	x |= (x >> n) & theirs
	x |= (x >> n) & theirs
	x |= (x >> n) & theirs
	x |= (x >> n) & theirs
	x |= (x >> n) & theirs
	return (x >> n) & target
}

// Flips returns the stones of theirs captured by mine playing on sq.
// sq is assumed to be empty.
func Flips(mine, theirs uint64, sq int) uint64 {
	bit := uint64(1) << uint(sq)
	h := theirs & interiorCols

	return flipDown(bit, mine, h, 1) |
		flipDown(bit, mine, h, 7) |
		flipDown(bit, mine, theirs, 8) |
		flipDown(bit, mine, h, 9) |
		flipUp(bit, mine, h, 1) |
		flipUp(bit, mine, h, 7) |
		flipUp(bit, mine, theirs, 8) |
		flipUp(bit, mine, h, 9)
}

// A run only flips when a mover stone closes it off.
func flipDown(bit, mine, theirs uint64, n uint) uint64 {
	x := (bit << n) & theirs
	x |= (x << n) & theirs
	x |= (x << n) & theirs
	x |= (x << n) & theirs
	x |= (x << n) & theirs
	x |= (x << n) & theirs
	if (x<<n)&mine == 0 {
		return 0
	}
	return x
}

func flipUp(bit, mine, theirs uint64, n uint) uint64 {
	x := (bit >> n) & theirs
	x |= (x >> n) & theirs
	x |= (x >> n) & theirs
	x |= (x >> n) & theirs
	x |= (x >> n) & theirs
	x |= (x >> n) & theirs
	if (x>>n)&mine == 0 {
		return 0
	}
	return x
}

// Neighbours returns every square adjacent to a set bit of x in any of the
// 8 directions. x itself is not excluded.
func Neighbours(x uint64) uint64 {
	l := x & notColA
	r := x & notColH
	return (r << 1) | (l >> 1) |
		(x << 8) | (x >> 8) |
		(r << 9) | (l << 7) |
		(r >> 7) | (l >> 9)
}

func PopCount(x uint64) int { return bits.OnesCount64(x) }

// BitIndex decodes a single-bit mask into its 0..63 square index.
func BitIndex(x uint64) int { return bits.TrailingZeros64(x) }

func bitOf(sq int) uint64 { return uint64(1) << uint(sq) }

func (p *Position) Stones(s Side) uint64 { return p.Bits[s] }

func (p *Position) Occupied() uint64 { return p.Bits[White] | p.Bits[Black] }

func (p *Position) EmptySquares() uint64 { return ^p.Occupied() }

func (p *Position) Count(s Side) int { return PopCount(p.Bits[s]) }

// Turn is the number of stones placed since the four-stone opening (0..60).
func (p *Position) Turn() int { return PopCount(p.Occupied()) - 4 }

func (p *Position) IsFull() bool { return p.Occupied() == allSquares }

func (p *Position) Legal(s Side) uint64 {
	return Moves(p.Bits[s], p.Bits[s.Opposite()])
}

func (p *Position) HasMoves(s Side) bool { return p.Legal(s) != 0 }

// GameOver reports whether neither side has a legal move.
func (p *Position) GameOver() bool {
	return !p.HasMoves(White) && !p.HasMoves(Black)
}

// FlipsFor returns what s would capture on sq, or 0 if sq is occupied.
func (p *Position) FlipsFor(s Side, sq int) uint64 {
	if sq < 0 || sq >= NumSquares || p.Occupied()&bitOf(sq) != 0 {
		return 0
	}
	return Flips(p.Bits[s], p.Bits[s.Opposite()], sq)
}

func (p *Position) IsLegal(s Side, sq int) bool {
	return p.FlipsFor(s, sq) != 0
}

// Play puts a stone for s on sq, flips the captured stones and updates the
// hash. It returns false and leaves p untouched when the move is illegal.
func (p *Position) Play(s Side, sq int) bool {
	flips := p.FlipsFor(s, sq)
	if flips == 0 {
		return false
	}
	p.apply(s, sq, flips)
	return true
}

// PlayInto writes p with s played on sq into dst. The move must be legal;
// it is the copy-and-play step used by the search stack.
func (p *Position) PlayInto(s Side, sq int, dst *Position) {
	*dst = *p
	dst.apply(s, sq, Flips(p.Bits[s], p.Bits[s.Opposite()], sq))
}

func (p *Position) apply(s Side, sq int, flips uint64) {
	initZobrist()
	o := s.Opposite()
	p.Bits[s] |= flips | bitOf(sq)
	p.Bits[o] &^= flips

	p.Hash ^= zobristFlip[sq][Empty][s]
	for f := flips; f != 0; f &= f - 1 {
		p.Hash ^= zobristFlip[BitIndex(f)][o][s]
	}
}

// Valid reports whether the two masks are disjoint.
func (p *Position) Valid() bool { return p.Bits[White]&p.Bits[Black] == 0 }

// MustValid panics on overlapping masks; every bitwise routine assumes
// they never overlap.
func (p *Position) MustValid() {
	if !p.Valid() {
		panic("othello: overlapping side masks")
	}
}
