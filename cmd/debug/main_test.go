package main

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"othello/internal/othello"
)

func TestLoadPosition(t *testing.T) {
	pos, s, err := loadPosition("", "white")
	if err != nil || s != othello.White || *pos != *othello.NewInitialPosition() {
		t.Fatalf("opening: pos=%v side=%v err=%v", pos, s, err)
	}

	grid := strings.Repeat(".", 27) + "bb" + strings.Repeat(".", 35)
	pos, s, err = loadPosition(grid, "b")
	if err != nil || s != othello.Black || pos.Count(othello.Black) != 2 {
		t.Fatalf("grid: side=%v err=%v", s, err)
	}
}

func TestLoadPositionErrors(t *testing.T) {
	if _, _, err := loadPosition("wb", "black"); !errors.Is(err, othello.ErrInvalidGrid) {
		t.Fatalf("short grid: err=%v", err)
	}
	if _, _, err := loadPosition("", "red"); err == nil {
		t.Fatal("unknown side accepted")
	}
}
