package mcp

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/locm/internal/game"
	"github.com/peterkuimelis/locm/internal/log"
	locmnet "github.com/peterkuimelis/locm/internal/net"
)

// GameSession is one game driven through tool calls.
type GameSession struct {
	ID     string
	engine *game.Engine
	logger *log.MemoryLogger
}

// Games holds every game started through the tools of one MCP server.
type Games struct {
	cfg game.EngineConfig

	mu    sync.Mutex
	games map[string]*GameSession
}

// NewGames creates an empty game table. New games are built from cfg; its
// Logger is replaced per game.
func NewGames(cfg game.EngineConfig) *Games {
	return &Games{cfg: cfg, games: make(map[string]*GameSession)}
}

// Start creates a game. An empty id gets a generated one.
func (g *Games) Start(id string) (*GameSession, error) {
	if id == "" {
		id = uuid.NewString()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.games[id]; ok {
		return nil, fmt.Errorf("game %q is already running", id)
	}
	cfg := g.cfg
	logger := log.NewMemoryLogger()
	cfg.Logger = logger
	sess := &GameSession{ID: id, engine: game.NewEngine(cfg), logger: logger}
	g.games[id] = sess
	return sess, nil
}

// PlayTurn runs one turn of the named game.
func (g *Games) PlayTurn(id string, ts *game.TurnState) (locmnet.TurnResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	sess, ok := g.games[id]
	if !ok {
		return locmnet.TurnResult{}, fmt.Errorf("no game %q", id)
	}
	return locmnet.PlaySnapshot(sess.engine, ts), nil
}

// Session returns the carried state of the named game.
func (g *Games) Session(id string) (locmnet.SessionView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	sess, ok := g.games[id]
	if !ok {
		return locmnet.SessionView{}, fmt.Errorf("no game %q", id)
	}
	return locmnet.BuildSessionView(sess.engine.Snapshot()), nil
}

// End forgets the named game and returns its full event log.
func (g *Games) End(id string) ([]locmnet.EventView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	sess, ok := g.games[id]
	if !ok {
		return nil, fmt.Errorf("no game %q", id)
	}
	delete(g.games, id)
	return locmnet.BuildEventViews(sess.logger.Events()), nil
}

// IDs lists running games.
func (g *Games) IDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ids := make([]string, 0, len(g.games))
	for id := range g.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// respondJSON marshals a tool response to a JSON string.
func respondJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
