package othello

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols

	NoSquare = -1
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

const (
	openingWhite uint64 = 0x0000001008000000
	openingBlack uint64 = 0x0000000810000000
)

var (
	ErrInvalidGrid   = errors.New("invalid board grid")
	ErrInvalidSquare = errors.New("invalid square")
	ErrIllegalMove   = errors.New("illegal move")
)

// NewPosition builds a position from raw masks and computes its hash.
func NewPosition(white, black uint64) *Position {
	p := &Position{Bits: [2]uint64{White: white, Black: black}}
	p.MustValid()
	p.Hash = p.CalculateHash()
	return p
}

func NewInitialPosition() *Position {
	return NewPosition(openingWhite, openingBlack)
}

// ParseGrid reads 64 squares in row-major order: 'w' is white, 'b' is
// black, anything else is empty. Whitespace is ignored so the grid may be
// split over lines.
func ParseGrid(grid string) (*Position, error) {
	var white, black uint64
	sq := 0
	for _, ch := range grid {
		if unicode.IsSpace(ch) {
			continue
		}
		if sq >= NumSquares {
			return nil, errors.Wrapf(ErrInvalidGrid, "more than %d squares", NumSquares)
		}
		switch ch {
		case 'w':
			white |= bitOf(sq)
		case 'b':
			black |= bitOf(sq)
		}
		sq++
	}
	if sq != NumSquares {
		return nil, errors.Wrapf(ErrInvalidGrid, "got %d squares, want %d", sq, NumSquares)
	}
	return NewPosition(white, black), nil
}

// Encode is the inverse of ParseGrid: 64 characters of 'w', 'b' and '.'.
func (p *Position) Encode() string {
	var sb strings.Builder
	sb.Grow(NumSquares)
	for sq := 0; sq < NumSquares; sq++ {
		switch p.occupant(sq) {
		case White:
			sb.WriteByte('w')
		case Black:
			sb.WriteByte('b')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// String renders 8 rows of 8 squares, top row first.
func (p *Position) String() string {
	return p.Render(0)
}

// Render draws the board with column letters and row numbers; squares set
// in marks that are empty are drawn as '*'.
func (p *Position) Render(marks uint64) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for r := 0; r < Rows; r++ {
		sb.WriteByte(byte('1' + r))
		for c := 0; c < Cols; c++ {
			sq := indexOf(r, c)
			sb.WriteByte(' ')
			switch p.occupant(sq) {
			case White:
				sb.WriteByte('W')
			case Black:
				sb.WriteByte('B')
			default:
				if marks&bitOf(sq) != 0 {
					sb.WriteByte('*')
				} else {
					sb.WriteByte('.')
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SquareName returns "a1".."h8": column letter then row number, row 1 on top.
func SquareName(sq int) string {
	if sq < 0 || sq >= NumSquares {
		return "--"
	}
	return string([]byte{byte('a' + colOf(sq)), byte('1' + rowOf(sq))})
}

func ParseSquare(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) != 2 {
		return NoSquare, errors.Wrapf(ErrInvalidSquare, "%q", name)
	}
	col := int(name[0]) - 'a'
	row := int(name[1]) - '1'
	if !onBoard(row, col) {
		return NoSquare, errors.Wrapf(ErrInvalidSquare, "%q", name)
	}
	return indexOf(row, col), nil
}
