package httpserver

import (
	"github.com/samber/lo"

	"othello/internal/othello"
	"othello/internal/server/game"
)

// GameResponse describes a game after any request that reads or changes it.
type GameResponse struct {
	GameID     string   `json:"game_id"`
	Board      string   `json:"board"` // 64 chars, 'w' / 'b' / '.', row-major from a1
	ToMove     string   `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"`
	Winner     string   `json:"winner,omitempty"`
	White      int      `json:"white"`
	Black      int      `json:"black"`
	LastMove   string   `json:"last_move,omitempty"` // "pass" for a pass
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// PlayRequest plays Move ("d3") for the side to move, or passes.
type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
	Pass   bool   `json:"pass"`
}

// AiMoveRequest 请求让 AI 为当前局面走一步
type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	MaxDepth int    `json:"max_depth"`
	TimeMs   int64  `json:"time_ms"`
}

type AiMoveResponse struct {
	GameResponse
	BestMove string `json:"best_move"` // "pass" when the engine had no move
	Score    int32  `json:"score"`
	Depth    int    `json:"depth"`
	Nodes    int64  `json:"nodes"`
	TimeMs   int64  `json:"time_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func squareToDTO(sq int) string {
	if sq == othello.NoSquare {
		return "pass"
	}
	return othello.SquareName(sq)
}

func squaresToDTO(b uint64) []string {
	var squares []int
	for ; b != 0; b &= b - 1 {
		squares = append(squares, othello.BitIndex(b))
	}
	return lo.Map(squares, func(sq int, _ int) string { return othello.SquareName(sq) })
}

func snapshotToDTO(s game.Snapshot) GameResponse {
	resp := GameResponse{
		GameID:     s.ID,
		Board:      s.Pos.Encode(),
		ToMove:     s.ToMove.String(),
		LegalMoves: squaresToDTO(s.Legal),
		Status:     string(s.Status),
		White:      s.Pos.Count(othello.White),
		Black:      s.Pos.Count(othello.Black),
	}
	if s.Status == game.StatusFinished {
		resp.Winner = "draw"
		if s.Winner != othello.Empty {
			resp.Winner = s.Winner.String()
		}
	}
	if n := len(s.History); n > 0 {
		resp.LastMove = squareToDTO(s.History[n-1].Square)
	}
	return resp
}
