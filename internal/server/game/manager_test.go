package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"othello/internal/engine"
	"othello/internal/othello"
)

func newTestManager() *Manager {
	cfg := engine.DefaultConfig()
	cfg.MaxDepth = 3
	cfg.TableSize = 1 << 12
	return NewManager(cfg, zerolog.Nop())
}

func TestNewGameAndGet(t *testing.T) {
	m := newTestManager()
	s := m.NewGame()
	if s.ID == "" || s.ToMove != othello.Black || s.Status != StatusOngoing {
		t.Fatalf("unexpected new game: %+v", s)
	}
	if othello.PopCount(s.Legal) != 4 {
		t.Fatalf("opening legal moves: %d", othello.PopCount(s.Legal))
	}
	got, err := m.Get(s.ID)
	if err != nil || got.ID != s.ID {
		t.Fatalf("get: %+v %v", got, err)
	}
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("missing game err=%v", err)
	}
}

func TestPlayValidatesMoves(t *testing.T) {
	m := newTestManager()
	id := m.NewGame().ID

	if _, err := m.Play(id, 0); !errors.Is(err, othello.ErrIllegalMove) {
		t.Fatalf("a1 err=%v", err)
	}
	if _, err := m.Play(id, othello.NoSquare); !errors.Is(err, ErrCannotPass) {
		t.Fatalf("pass err=%v", err)
	}
	s, err := m.Play(id, 19)
	if err != nil {
		t.Fatalf("d3: %v", err)
	}
	if s.ToMove != othello.White || len(s.History) != 1 || s.Pos.Count(othello.Black) != 4 {
		t.Fatalf("after d3: %+v", s)
	}
}

func TestAIMovePlaysLegalMoves(t *testing.T) {
	m := newTestManager()
	id := m.NewGame().ID

	for i := 0; i < 10; i++ {
		before, _ := m.Get(id)
		s, res, err := m.AIMove(id, 2, 0)
		if err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		if res.Pass {
			continue
		}
		if before.Legal&(1<<uint(res.Move)) == 0 {
			t.Fatalf("move %d: engine played illegal %s", i, othello.SquareName(res.Move))
		}
		if s.ToMove != before.ToMove.Opposite() {
			t.Fatalf("move %d: side to move not switched", i)
		}
	}
}

func TestGameRunsToCompletion(t *testing.T) {
	m := newTestManager()
	id := m.NewGame().ID

	var s Snapshot
	var err error
	for i := 0; i < 130; i++ {
		s, _, err = m.AIMove(id, 1, 0)
		if errors.Is(err, ErrGameOver) {
			break
		}
		if err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
	}
	if s.Status != StatusFinished {
		t.Fatalf("status=%s after game loop", s.Status)
	}
	w, b := s.Pos.Count(othello.White), s.Pos.Count(othello.Black)
	if (w > b && s.Winner != othello.White) || (b > w && s.Winner != othello.Black) || (w == b && s.Winner != othello.Empty) {
		t.Fatalf("winner=%v with white=%d black=%d", s.Winner, w, b)
	}
	if _, err := m.Play(id, othello.NoSquare); !errors.Is(err, ErrGameOver) {
		t.Fatalf("play after end err=%v", err)
	}
}

func TestMustPass(t *testing.T) {
	m := newTestManager()
	id := m.NewGame().ID
	g, _ := m.lookup(id)
	g.Pos = *othello.NewPosition(0xFF, 1<<8|1<<20)
	g.ToMove = othello.Black

	s, _ := m.Get(id)
	if s.Status != StatusMustPass {
		t.Fatalf("status=%s", s.Status)
	}
	if _, err := m.Play(id, 16); !errors.Is(err, ErrMustPass) {
		t.Fatalf("move while stuck err=%v", err)
	}
	s, err := m.Play(id, othello.NoSquare)
	if err != nil || s.ToMove != othello.White {
		t.Fatalf("pass: %+v %v", s, err)
	}
}

func TestDelete(t *testing.T) {
	m := newTestManager()
	id := m.NewGame().ID
	if err := m.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("len=%d", m.Len())
	}
	if err := m.Delete(id); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("second delete err=%v", err)
	}
}
