package engine

import (
	"time"

	"othello/internal/othello"
)

const (
	// 一个足够大的值，当成正负无穷；取反和 -alpha-1 都不会溢出
	scoreInf int32 = 1 << 30
)

// 搜索配置
type SearchConfig struct {
	MaxDepth  int           // 最大搜索深度（ply），超过 Config.MaxDepth 会被截断
	TimeLimit time.Duration // 只在根节点两步之间检查；0 表示不限时
}

// 搜索结果
type SearchResult struct {
	Move      int // 落子格，停一手时为 othello.NoSquare
	Pass      bool
	Score     int32 // from the searching side's view
	Depth     int
	Nodes     int64
	TimeUsed  time.Duration
	Completed bool // 超时前是否搜完了所有根节点走法
}

// RequestMove is the caller protocol: the best square for side within
// depth plies, or ok=false when side has to pass.
func (e *Engine) RequestMove(pos *othello.Position, side othello.Side, depth int) (sq int, ok bool) {
	res := e.Search(pos, side, SearchConfig{MaxDepth: depth})
	if res.Pass {
		return othello.NoSquare, false
	}
	return res.Move, true
}

// Search picks the move for side with the highest negated child score.
// Every move after the first is tried with a null window first and
// re-searched when it beats the current best.
func (e *Engine) Search(pos *othello.Position, side othello.Side, cfg SearchConfig) SearchResult {
	start := time.Now()
	depth := cfg.MaxDepth
	if depth <= 0 || depth > e.cfg.MaxDepth {
		depth = e.cfg.MaxDepth
	}
	var deadline time.Time
	if cfg.TimeLimit > 0 {
		deadline = start.Add(cfg.TimeLimit)
	}

	e.side = side
	e.nodes = 0

	root := &e.stack[0]
	*root = *pos
	root.MustValid()
	// 调用方传入的 Hash 不可信，根节点总是重新计算
	root.Hash = root.CalculateHash()

	list := &e.moves[0]
	list.Generate(root, side)
	if list.Len() == 0 {
		return SearchResult{
			Move:      othello.NoSquare,
			Pass:      true,
			Score:     e.eval(0, 1),
			Depth:     depth,
			TimeUsed:  time.Since(start),
			Completed: true,
		}
	}

	var entry *TTEntry
	if e.tt != nil {
		entry = e.tt.Lookup(root, side)
		list.Promote(entry.Best[:]...)
	}

	child := &e.stack[1]
	best := [3]int8{othello.NoSquare, othello.NoSquare, othello.NoSquare}
	bestScore := -scoreInf
	completed := true

	for i := 0; i < list.Len(); i++ {
		if i > 0 && !deadline.IsZero() && time.Now().After(deadline) {
			completed = false
			break
		}
		sq := list.At(i)
		root.PlayInto(side, sq, child)

		var score int32
		if i == 0 {
			score = -e.negascout(1, depth-1, -scoreInf, scoreInf, -1)
		} else {
			score = -e.negascout(1, depth-1, -bestScore-1, -bestScore, -1)
			if score > bestScore {
				score = -e.negascout(1, depth-1, -scoreInf, -score, -1)
			}
		}

		if i == 0 || score > bestScore {
			bestScore = score
			best[2], best[1], best[0] = best[1], best[0], int8(sq)
		}
	}

	if entry != nil {
		entry.Best = best
		if completed {
			entry.Depth = int8(depth)
			entry.Score = bestScore
		}
	}

	res := SearchResult{
		Move:      int(best[0]),
		Score:     bestScore,
		Depth:     depth,
		Nodes:     e.nodes,
		TimeUsed:  time.Since(start),
		Completed: completed,
	}
	ev := e.log.Debug().
		Str("side", side.String()).
		Str("move", othello.SquareName(res.Move)).
		Int32("score", res.Score).
		Int("depth", depth).
		Int64("nodes", res.Nodes).
		Dur("took", res.TimeUsed).
		Bool("completed", completed)
	if e.tt != nil {
		ev = ev.Int("tt_len", e.tt.Len()).Int("tt_chained", e.tt.Chained())
	}
	ev.Msg("search-done")
	return res
}

// negascout searches the position at e.stack[ply] with the side given by
// multiplier (1 = e.side) to move. Values are from the mover's view.
func (e *Engine) negascout(ply, depth int, alpha, beta, multiplier int32) int32 {
	e.nodes++
	pos := &e.stack[ply]
	mover := e.side
	if multiplier < 0 {
		mover = mover.Opposite()
	}

	if depth == 0 {
		// 叶子节点不建条目：它永远不会存分数
		return e.eval(ply, multiplier)
	}

	var entry *TTEntry
	if e.tt != nil {
		entry = e.tt.Lookup(pos, mover)
		if int(entry.Depth) == depth {
			return entry.Score
		}
	}

	list := &e.moves[ply]
	list.Generate(pos, mover)
	if list.Len() == 0 {
		return e.eval(ply, multiplier)
	}
	if entry != nil {
		list.Promote(entry.Best[:]...)
	}

	alpha0 := alpha
	child := &e.stack[ply+1]
	best := [3]int8{othello.NoSquare, othello.NoSquare, othello.NoSquare}

	for i := 0; i < list.Len(); i++ {
		sq := list.At(i)
		pos.PlayInto(mover, sq, child)

		var score int32
		if i == 0 {
			score = -e.negascout(ply+1, depth-1, -beta, -alpha, -multiplier)
		} else {
			score = -e.negascout(ply+1, depth-1, -alpha-1, -alpha, -multiplier)
			// 空窗失败：真实值可能在 (alpha, beta) 之间，用全窗口重搜
			if score > alpha && score < beta {
				score = -e.negascout(ply+1, depth-1, -beta, -score, -multiplier)
			}
		}

		if score > alpha {
			alpha = score
			best[2], best[1], best[0] = best[1], best[0], int8(sq)
			if alpha >= beta {
				break
			}
		}
	}

	if entry != nil {
		if best[0] != othello.NoSquare {
			entry.Best = best
		}
		// 只缓存精确值：窗口不是空窗，且结果严格落在窗口内
		if beta-alpha0 > 1 && alpha > alpha0 && alpha < beta {
			entry.Depth = int8(depth)
			entry.Score = alpha
		}
	}
	return alpha
}
