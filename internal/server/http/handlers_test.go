package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"othello/internal/engine"
	"othello/internal/server/game"
)

func newTestServer() *Server {
	cfg := engine.DefaultConfig()
	cfg.MaxDepth = 3
	cfg.TableSize = 1 << 12
	return NewServer(game.NewManager(cfg, zerolog.Nop()), 2)
}

func post(t *testing.T, srv http.Handler, path, body string, out any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if out != nil {
		if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s body %q: %v", path, rr.Body.String(), err)
		}
	}
	return rr.Code
}

func TestNewGamePlayAndAiMove(t *testing.T) {
	srv := newTestServer()

	var created GameResponse
	if code := post(t, srv, "/api/new_game", `{}`, &created); code != http.StatusOK {
		t.Fatalf("new_game status %d", code)
	}
	if created.GameID == "" || created.ToMove != "black" || len(created.LegalMoves) != 4 {
		t.Fatalf("unexpected new game: %+v", created)
	}
	if created.Board != "...........................wb......bw..........................." {
		t.Fatalf("board=%q", created.Board)
	}

	var played GameResponse
	body := `{"game_id":"` + created.GameID + `","move":"d3"}`
	if code := post(t, srv, "/api/play", body, &played); code != http.StatusOK {
		t.Fatalf("play status %d", code)
	}
	if played.ToMove != "white" || played.Black != 4 || played.White != 1 || played.LastMove != "d3" {
		t.Fatalf("after d3: %+v", played)
	}

	var ai AiMoveResponse
	body = `{"game_id":"` + created.GameID + `","max_depth":2}`
	if code := post(t, srv, "/api/ai_move", body, &ai); code != http.StatusOK {
		t.Fatalf("ai_move status %d", code)
	}
	if ai.ToMove != "black" || ai.Depth != 2 || ai.BestMove == "" || ai.LastMove != ai.BestMove {
		t.Fatalf("ai move: %+v", ai)
	}
	found := false
	for _, m := range played.LegalMoves {
		if m == ai.BestMove {
			found = true
		}
	}
	if !found {
		t.Fatalf("ai played %s, legal were %v", ai.BestMove, played.LegalMoves)
	}

	var state GameResponse
	body = `{"game_id":"` + created.GameID + `"}`
	if code := post(t, srv, "/api/state", body, &state); code != http.StatusOK {
		t.Fatalf("state status %d", code)
	}
	if state.Board != ai.Board {
		t.Fatalf("state board differs from last response")
	}
}

func TestErrorStatuses(t *testing.T) {
	srv := newTestServer()
	var created GameResponse
	post(t, srv, "/api/new_game", `{}`, &created)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"bad json", "/api/play", `{`, http.StatusBadRequest},
		{"unknown game", "/api/state", `{"game_id":"missing"}`, http.StatusNotFound},
		{"bad square", "/api/play", `{"game_id":"` + created.GameID + `","move":"z9"}`, http.StatusBadRequest},
		{"illegal move", "/api/play", `{"game_id":"` + created.GameID + `","move":"a1"}`, http.StatusConflict},
		{"pass with moves", "/api/play", `{"game_id":"` + created.GameID + `","pass":true}`, http.StatusConflict},
		{"unknown path", "/api/nope", `{}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := post(t, srv, tt.path, tt.body, nil); code != tt.want {
				t.Fatalf("status %d want %d", code, tt.want)
			}
		})
	}
}

func TestMethodNotAllowedAndHealth(t *testing.T) {
	srv := newTestServer()

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/state", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /api/state status %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("healthz: %d %s", rr.Code, rr.Body.String())
	}
}
