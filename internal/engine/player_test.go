package engine

import (
	"testing"

	"github.com/pkg/errors"

	"othello/internal/othello"
)

func TestPlayersFinishAGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	cfg.TableSize = 1 << 12

	black := NewPlayer(othello.Black, cfg)
	white := NewPlayer(othello.White, cfg)
	ref := othello.NewInitialPosition()

	players := [2]*Player{black, white}
	var last *othello.Move
	passes := 0
	for turn := 0; turn < 200 && passes < 2; turn++ {
		p := players[turn%2]
		mv, err := p.DoMove(last, -1)
		if err != nil {
			t.Fatalf("turn %d: %v", turn, err)
		}
		if mv == nil {
			if ref.HasMoves(p.Side) {
				t.Fatalf("turn %d: %v passed with moves available", turn, p.Side)
			}
			passes++
		} else {
			passes = 0
			if !ref.Play(p.Side, mv.Square()) {
				t.Fatalf("turn %d: %v played illegal %v", turn, p.Side, *mv)
			}
		}
		if got := p.Position(); got != *ref {
			t.Fatalf("turn %d: player board diverged", turn)
		}
		last = mv
	}
	if !ref.GameOver() {
		t.Fatalf("game did not finish:\n%s", ref)
	}
}

func TestPlayerRejectsIllegalOpponentMove(t *testing.T) {
	p := NewPlayer(othello.White, DefaultConfig())
	_, err := p.DoMove(&othello.Move{X: 0, Y: 0}, -1)
	if !errors.Is(err, othello.ErrIllegalMove) {
		t.Fatalf("err=%v", err)
	}
	_, err = p.DoMove(&othello.Move{X: 9, Y: 0}, -1)
	if !errors.Is(err, othello.ErrIllegalMove) {
		t.Fatalf("off-board err=%v", err)
	}
}
