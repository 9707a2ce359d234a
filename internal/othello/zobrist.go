package othello

import "sync"

const zobristStates = 3 // White, Black, Empty

var (
	zobristOnce sync.Once

	zobristTable [NumSquares][zobristStates]uint64
	// zobristFlip[sq][old][new] = table[sq][old] ^ table[sq][new]
	zobristFlip [NumSquares][zobristStates][zobristStates]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x2545F4914F6CDD1D)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for sq := 0; sq < NumSquares; sq++ {
			for st := 0; st < zobristStates; st++ {
				zobristTable[sq][st] = next()
			}
		}
		for sq := 0; sq < NumSquares; sq++ {
			for from := 0; from < zobristStates; from++ {
				for to := 0; to < zobristStates; to++ {
					zobristFlip[sq][from][to] = zobristTable[sq][from] ^ zobristTable[sq][to]
				}
			}
		}
	})
}

// ZobristKey returns the table value for occupant s on sq.
func ZobristKey(sq int, s Side) uint64 {
	initZobrist()
	return zobristTable[sq][s]
}

func (p *Position) occupant(sq int) Side {
	b := bitOf(sq)
	switch {
	case p.Bits[White]&b != 0:
		return White
	case p.Bits[Black]&b != 0:
		return Black
	default:
		return Empty
	}
}

// CalculateHash computes the fingerprint from scratch over all 64 squares.
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq := 0; sq < NumSquares; sq++ {
		h ^= zobristTable[sq][p.occupant(sq)]
	}
	return h
}
