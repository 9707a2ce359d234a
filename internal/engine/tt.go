package engine

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"othello/internal/othello"
)

const (
	noDepth    = -1
	chainChunk = 1 << 12
)

var errTableTooLarge = errors.New("transposition table exceeds memory budget")

// 置换表条目：一个确切局面的搜索结果
type TTEntry struct {
	Bits  [2]uint64 // 局面的拷贝，不是指向搜索栈的指针
	Mover othello.Side
	Used  bool
	Depth int8 // depth the score is valid for, noDepth if none
	Score int32
	Best  [3]int8 // 最佳、次佳、第三走法，再次访问时优先搜索

	next uint32 // 链表下一项（从 1 开始），0 表示链尾
}

func (e *TTEntry) matches(pos *othello.Position, mover othello.Side) bool {
	return e.Bits == pos.Bits && e.Mover == mover
}

func (e *TTEntry) claim(pos *othello.Position, mover othello.Side) {
	*e = TTEntry{
		Bits:  pos.Bits,
		Mover: mover,
		Used:  true,
		Depth: noDepth,
		Best:  [3]int8{othello.NoSquare, othello.NoSquare, othello.NoSquare},
	}
}

// 置换表：2 的幂个桶，冲突用链表串起来。
// 条目从不淘汰，链表只增不减，直到 Clear。
type TranspositionTable struct {
	heads []TTEntry
	mask  uint64

	chain   [][]TTEntry // 固定大小的块，扩容时已有条目指针不失效
	chained uint32
	used    int
}

var ttEntrySize = uint64(unsafe.Sizeof(TTEntry{}))

// NewTranspositionTable allocates size buckets (rounded down to a power of
// two). When the allocation fails or exceeds budget bytes it retries at a
// quarter of the size until it fits.
func NewTranspositionTable(size, budget uint64, logger zerolog.Logger) *TranspositionTable {
	size = floorPowerOfTwo(size)
	for {
		heads, err := allocEntries(size, budget)
		if err == nil {
			return &TranspositionTable{heads: heads, mask: size - 1}
		}
		next := size / 4
		if next == 0 {
			next = 1
		}
		logger.Warn().Err(err).Uint64("size", size).Uint64("retry", next).Msg("tt-shrink")
		if size == 1 {
			// A single bucket always fits; only an unsatisfiable budget gets here.
			return &TranspositionTable{heads: make([]TTEntry, 1)}
		}
		size = next
	}
}

func allocEntries(n, budget uint64) (entries []TTEntry, err error) {
	if budget > 0 && n > budget/ttEntrySize {
		return nil, errors.Wrapf(errTableTooLarge, "%d entries of %d bytes", n, ttEntrySize)
	}
	defer func() {
		if r := recover(); r != nil {
			entries = nil
			err = errors.Errorf("allocate %d entries: %v", n, r)
		}
	}()
	return make([]TTEntry, n), nil
}

func floorPowerOfTwo(n uint64) uint64 {
	if n < 2 {
		return 1
	}
	p := uint64(1)
	for p <= n/2 {
		p <<= 1
	}
	return p
}

// Lookup returns the entry for pos with mover to play, creating it if this
// exact position has not been seen. Equal hashes are not enough: the stored
// masks must match.
func (t *TranspositionTable) Lookup(pos *othello.Position, mover othello.Side) *TTEntry {
	e := &t.heads[pos.Hash&t.mask]
	if !e.Used {
		e.claim(pos, mover)
		t.used++
		return e
	}
	for {
		if e.matches(pos, mover) {
			return e
		}
		if e.next == 0 {
			ref, ne := t.allocChained()
			e.next = ref
			ne.claim(pos, mover)
			t.used++
			return ne
		}
		e = t.entryAt(e.next)
	}
}

func (t *TranspositionTable) allocChained() (uint32, *TTEntry) {
	i := t.chained
	if int(i/chainChunk) == len(t.chain) {
		t.chain = append(t.chain, make([]TTEntry, chainChunk))
	}
	t.chained++
	return i + 1, &t.chain[i/chainChunk][i%chainChunk]
}

func (t *TranspositionTable) entryAt(ref uint32) *TTEntry {
	i := ref - 1
	return &t.chain[i/chainChunk][i%chainChunk]
}

func (t *TranspositionTable) Size() uint64 { return uint64(len(t.heads)) }

// Len is the number of positions stored.
func (t *TranspositionTable) Len() int { return t.used }

func (t *TranspositionTable) Chained() int { return int(t.chained) }

// Clear 清空所有条目但保留桶数组，新对局开始时调用
func (t *TranspositionTable) Clear() {
	clear(t.heads)
	t.chain = nil
	t.chained = 0
	t.used = 0
}
