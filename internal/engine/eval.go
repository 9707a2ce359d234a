package engine

import "othello/internal/othello"

// normalized returns w*(mine-theirs)/(mine+theirs), 0 when both are 0.
// Integer division truncates toward zero, so swapping sides negates it.
func normalized(w int32, mine, theirs int) int32 {
	if mine+theirs == 0 {
		return 0
	}
	return w * int32(mine-theirs) / int32(mine+theirs)
}

// safeStones counts stones of s that no single reply by the opponent can
// flip. An opponent without moves leaves every stone safe.
func safeStones(pos *othello.Position, s othello.Side, oppMoves uint64) int {
	o := s.Opposite()
	mine, theirs := pos.Bits[s], pos.Bits[o]
	var threatened uint64
	for m := oppMoves; m != 0; m &= m - 1 {
		threatened |= othello.Flips(theirs, mine, othello.BitIndex(m))
	}
	return othello.PopCount(mine &^ threatened)
}

// 局面评估：站在 side 的视角，正数对 side 有利。
// Evaluate(p, s) == -Evaluate(p, s.Opposite()) always holds.
func Evaluate(pos *othello.Position, side othello.Side, w *Weights) int32 {
	opp := side.Opposite()
	mine, theirs := pos.Bits[side], pos.Bits[opp]
	nMine, nTheirs := othello.PopCount(mine), othello.PopCount(theirs)

	turn := pos.Turn()
	if turn >= 60 {
		return normalized(w.EndGame, nMine, nTheirs)
	}

	myMoves := othello.Moves(mine, theirs)
	oppMoves := othello.Moves(theirs, mine)
	if myMoves == 0 && oppMoves == 0 {
		// 双方都无棋可走，棋盘未满也算终局
		return normalized(w.EndGame, nMine, nTheirs)
	}

	empty := pos.EmptySquares()

	score := normalized(w.Stones.At(turn), nMine, nTheirs)

	score += normalized(w.Mobility.At(turn),
		othello.PopCount(myMoves), othello.PopCount(oppMoves))

	// 与我方棋子相邻的空格是对手将来的落点
	score -= normalized(w.PotentialMobility.At(turn),
		othello.PopCount(othello.Neighbours(mine)&empty),
		othello.PopCount(othello.Neighbours(theirs)&empty))

	score += normalized(w.Corners.At(turn),
		othello.PopCount(mine&othello.Corners), othello.PopCount(theirs&othello.Corners))

	score += normalized(w.PotentialCorners.At(turn),
		othello.PopCount(myMoves&othello.Corners), othello.PopCount(oppMoves&othello.Corners))

	score += normalized(w.Safe.At(turn),
		safeStones(pos, side, oppMoves), safeStones(pos, opp, myMoves))

	return score
}
