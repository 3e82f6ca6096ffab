package web

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/locm/internal/game"
	locmnet "github.com/peterkuimelis/locm/internal/net"
)

// GameInfo is one live game as listed by /api/games.
type GameInfo struct {
	ID      string              `json:"id"`
	Session locmnet.SessionView `json:"session"`
}

// registry holds the last published snapshot of every live game. Engines
// stay on their socket goroutine; only copies cross over.
type registry struct {
	mu    sync.Mutex
	games map[string]game.SessionSnapshot
}

func newRegistry() *registry {
	return &registry{games: make(map[string]game.SessionSnapshot)}
}

func newGameID() string {
	return uuid.NewString()
}

func (r *registry) put(id string, snap game.SessionSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[id] = snap
}

func (r *registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
}

func (r *registry) list() []GameInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]GameInfo, 0, len(r.games))
	for id, snap := range r.games {
		out = append(out, GameInfo{ID: id, Session: locmnet.BuildSessionView(snap)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
