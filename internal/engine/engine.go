package engine

import (
	"github.com/rs/zerolog"

	"othello/internal/othello"
)

// Engine owns one transposition table and the per-ply search stack. It is
// not safe for concurrent use: one in-flight search per Engine.
type Engine struct {
	cfg Config
	tt  *TranspositionTable // nil when DisableTable is set

	// 按 ply 索引的搜索栈，每层递归独占一格
	stack []othello.Position
	moves []othello.MoveList

	side  othello.Side // 分数以这一方的视角计算
	nodes int64

	log zerolog.Logger
}

func NewEngine(cfg Config) *Engine {
	cfg = cfg.normalized()
	e := &Engine{
		cfg:   cfg,
		stack: make([]othello.Position, cfg.MaxDepth+2),
		moves: make([]othello.MoveList, cfg.MaxDepth+2),
		log:   cfg.Logger,
	}
	if !cfg.DisableTable {
		e.tt = NewTranspositionTable(cfg.TableSize, cfg.TableBudget, cfg.Logger)
	}
	return e
}

func (e *Engine) Config() Config { return e.cfg }

// Table returns the transposition table, nil if disabled.
func (e *Engine) Table() *TranspositionTable { return e.tt }

// 新对局开始时清空缓存
func (e *Engine) Reset() {
	if e.tt != nil {
		e.tt.Clear()
	}
}

func (e *Engine) eval(ply int, multiplier int32) int32 {
	return multiplier * Evaluate(&e.stack[ply], e.side, &e.cfg.Weights)
}
