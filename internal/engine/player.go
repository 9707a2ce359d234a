package engine

import (
	"time"

	"github.com/pkg/errors"

	"othello/internal/othello"
)

// Player keeps its own copy of the game and answers one move at a time,
// the way a tournament harness drives an engine.
type Player struct {
	Side othello.Side

	pos    othello.Position
	engine *Engine
}

func NewPlayer(side othello.Side, cfg Config) *Player {
	return &Player{
		Side:   side,
		pos:    *othello.NewInitialPosition(),
		engine: NewEngine(cfg),
	}
}

func (p *Player) Position() othello.Position { return p.pos }

func (p *Player) Engine() *Engine { return p.engine }

// DoMove applies the opponent's last move (nil on the first move or when
// the opponent passed), then searches and plays a reply. msLeft is the time
// left for the game in milliseconds, -1 for no limit. A nil move means pass.
func (p *Player) DoMove(opponent *othello.Move, msLeft int) (*othello.Move, error) {
	if opponent != nil {
		if !opponent.OnBoard() || !p.pos.Play(p.Side.Opposite(), opponent.Square()) {
			return nil, errors.Wrapf(othello.ErrIllegalMove, "opponent move %v", *opponent)
		}
	}

	left := time.Duration(-1)
	if msLeft >= 0 {
		left = time.Duration(msLeft) * time.Millisecond
	}
	depth := DepthForBudget(left, othello.PopCount(p.pos.EmptySquares()), p.engine.cfg.MaxDepth)

	sq, ok := p.engine.RequestMove(&p.pos, p.Side, depth)
	if !ok {
		return nil, nil
	}
	// 自己的棋盘也要同步落子
	p.pos.Play(p.Side, sq)
	m := othello.MoveOf(sq)
	return &m, nil
}
