package net

import (
	"context"
	"log/slog"
	"net"

	"github.com/peterkuimelis/locm/internal/game"
	"github.com/peterkuimelis/locm/internal/log"
)

// EngineFactory builds the engine for a new game, logging to logger.
type EngineFactory func(logger log.EventLogger) *game.Engine

// NewEngineFactory returns a factory stamping out engines from cfg.
func NewEngineFactory(cfg game.EngineConfig) EngineFactory {
	return func(logger log.EventLogger) *game.Engine {
		c := cfg
		c.Logger = logger
		return game.NewEngine(c)
	}
}

// gameConn owns one connection and the engine of the game played on it.
type gameConn struct {
	conn   net.Conn
	logger *slog.Logger
	engine EngineFactory
}

func (g *gameConn) run(ctx context.Context) {
	defer g.conn.Close()
	stop := context.AfterFunc(ctx, func() { g.conn.Close() })
	defer stop()

	eng := g.engine(log.NewSlogLogger(g.logger))
	g.logger.Info("game started")
	if err := game.Play(ctx, g.conn, g.conn, eng); err != nil && ctx.Err() == nil {
		g.logger.Error("game aborted", "turn", eng.Turn(), "error", err)
		return
	}
	g.logger.Info("game finished", "turns", eng.Turn(), "session", eng.Snapshot().String())
}
