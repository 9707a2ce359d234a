package game

import (
	"sync"
	"time"

	"othello/internal/engine"
	"othello/internal/othello"
)

type Status string

const (
	StatusOngoing  Status = "ongoing"
	StatusMustPass Status = "must_pass" // side to move has no legal move
	StatusFinished Status = "finished"
)

// Turn records one move; Square is othello.NoSquare for a pass.
type Turn struct {
	Side   othello.Side
	Square int
}

type GameState struct {
	mu sync.Mutex

	ID        string
	Pos       othello.Position
	ToMove    othello.Side
	History   []Turn
	CreatedAt time.Time
	UpdatedAt time.Time

	// created on the first engine move; owns this game's table
	engine *engine.Engine
}

// Snapshot is a copy of a game that can be read without holding its lock.
type Snapshot struct {
	ID        string
	Pos       othello.Position
	ToMove    othello.Side
	Legal     uint64
	Status    Status
	Winner    othello.Side // Empty while ongoing or on a draw
	History   []Turn
	UpdatedAt time.Time
}

func (g *GameState) status() Status {
	switch {
	case g.Pos.GameOver():
		return StatusFinished
	case !g.Pos.HasMoves(g.ToMove):
		return StatusMustPass
	default:
		return StatusOngoing
	}
}

func (g *GameState) winner() othello.Side {
	if !g.Pos.GameOver() {
		return othello.Empty
	}
	w, b := g.Pos.Count(othello.White), g.Pos.Count(othello.Black)
	switch {
	case w > b:
		return othello.White
	case b > w:
		return othello.Black
	default:
		return othello.Empty
	}
}

func (g *GameState) snapshot() Snapshot {
	return Snapshot{
		ID:        g.ID,
		Pos:       g.Pos,
		ToMove:    g.ToMove,
		Legal:     g.Pos.Legal(g.ToMove),
		Status:    g.status(),
		Winner:    g.winner(),
		History:   append([]Turn(nil), g.History...),
		UpdatedAt: g.UpdatedAt,
	}
}

func (g *GameState) record(side othello.Side, sq int) {
	g.History = append(g.History, Turn{Side: side, Square: sq})
	g.ToMove = side.Opposite()
	g.UpdatedAt = time.Now()
}
