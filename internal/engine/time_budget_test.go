package engine

import (
	"testing"
	"time"
)

func TestDepthForBudget(t *testing.T) {
	tests := []struct {
		name     string
		left     time.Duration
		empties  int
		maxDepth int
		want     int
	}{
		{"no limit", -1, 60, 6, 6},
		{"nothing left", 0, 60, 6, 2},
		{"tight", 30 * 20 * time.Millisecond, 60, 6, 3},
		{"plenty", time.Hour, 60, 6, 6},
		{"clamped", time.Hour, 60, 4, 4},
		{"last move", 500 * time.Millisecond, 1, 8, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DepthForBudget(tt.left, tt.empties, tt.maxDepth); got != tt.want {
				t.Fatalf("got %d want %d", got, tt.want)
			}
		})
	}
}
