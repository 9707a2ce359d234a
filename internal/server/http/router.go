package httpserver

import (
	"net/http"

	"othello/internal/server/game"
)

// Server mounts the JSON API under /api/ and a health probe.
type Server struct {
	mux   *http.ServeMux
	games *game.Manager
}

func NewServer(games *game.Manager, defaultDepth int) *Server {
	s := &Server{mux: http.NewServeMux(), games: games}
	s.mux.Handle("/api/", NewHandler(games, defaultDepth))
	s.mux.HandleFunc("/healthz", s.handleHealth)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "games": s.games.Len()})
}
