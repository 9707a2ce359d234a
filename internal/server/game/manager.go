package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"othello/internal/engine"
	"othello/internal/othello"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")
	ErrMustPass     = errors.New("no legal move, side must pass")
	ErrCannotPass   = errors.New("cannot pass with legal moves available")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	engineCfg engine.Config
	log       zerolog.Logger
}

// NewManager creates a manager whose games search with cfg. Each game gets
// its own engine, so searches in different games never share a table.
func NewManager(cfg engine.Config, logger zerolog.Logger) *Manager {
	return &Manager{
		games:     make(map[string]*GameState),
		engineCfg: cfg,
		log:       logger,
	}
}

func (m *Manager) NewGame() Snapshot {
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       *othello.NewInitialPosition(),
		ToMove:    othello.Black,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()

	m.log.Debug().Str("game", g.ID).Msg("new-game")
	return g.snapshot()
}

func (m *Manager) lookup(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(ErrGameNotFound, "id %q", id)
	}
	return g, nil
}

func (m *Manager) Get(id string) (Snapshot, error) {
	g, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot(), nil
}

// Play applies sq for the side to move; othello.NoSquare passes, which is
// only allowed when that side has no legal move.
func (m *Manager) Play(id string, sq int) (Snapshot, error) {
	g, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Pos.GameOver() {
		return g.snapshot(), ErrGameOver
	}
	side := g.ToMove
	canMove := g.Pos.HasMoves(side)
	switch {
	case sq == othello.NoSquare && canMove:
		return g.snapshot(), ErrCannotPass
	case sq == othello.NoSquare:
		g.record(side, othello.NoSquare)
	case !canMove:
		return g.snapshot(), ErrMustPass
	case !g.Pos.Play(side, sq):
		return g.snapshot(), errors.Wrapf(othello.ErrIllegalMove, "%v at %s", side, othello.SquareName(sq))
	default:
		g.record(side, sq)
	}
	return g.snapshot(), nil
}

// AIMove lets the engine play for the side to move, passing if it has to.
func (m *Manager) AIMove(id string, depth int, limit time.Duration) (Snapshot, engine.SearchResult, error) {
	g, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, engine.SearchResult{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Pos.GameOver() {
		return g.snapshot(), engine.SearchResult{}, ErrGameOver
	}
	if g.engine == nil {
		g.engine = engine.NewEngine(m.engineCfg)
	}

	side := g.ToMove
	res := g.engine.Search(&g.Pos, side, engine.SearchConfig{MaxDepth: depth, TimeLimit: limit})
	if res.Pass {
		g.record(side, othello.NoSquare)
	} else {
		g.Pos.Play(side, res.Move)
		g.record(side, res.Move)
	}
	m.log.Debug().
		Str("game", g.ID).
		Str("side", side.String()).
		Str("move", othello.SquareName(res.Move)).
		Int32("score", res.Score).
		Int64("nodes", res.Nodes).
		Msg("ai-move")
	return g.snapshot(), res, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errors.Wrapf(ErrGameNotFound, "id %q", id)
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
