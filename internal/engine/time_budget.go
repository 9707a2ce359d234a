package engine

import "time"

// 各深度单步大致耗时（默认权重下测得）
var depthCosts = []struct {
	depth int
	needs time.Duration
}{
	{2, 0},
	{3, 20 * time.Millisecond},
	{4, 100 * time.Millisecond},
	{5, 400 * time.Millisecond},
	{6, 1500 * time.Millisecond},
	{7, 6 * time.Second},
}

// DepthForBudget turns the time left for the whole game into a ply count
// for the next move. A negative budget means no limit.
func DepthForBudget(left time.Duration, emptySquares, maxDepth int) int {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	if left < 0 {
		return maxDepth
	}
	movesLeft := (emptySquares + 1) / 2
	if movesLeft < 1 {
		movesLeft = 1
	}
	perMove := left / time.Duration(movesLeft)

	depth := 1
	for _, c := range depthCosts {
		if perMove >= c.needs {
			depth = c.depth
		}
	}
	if perMove >= 2*depthCosts[len(depthCosts)-1].needs {
		depth = maxDepth
	}
	if depth > maxDepth {
		depth = maxDepth
	}
	return depth
}
