package net

import (
	"context"
	"fmt"
	"net"

	"github.com/peterkuimelis/locm/internal/game"
)

// Connect dials a game host at addr and plays a single game on the
// connection until the host closes it.
func Connect(ctx context.Context, addr string, eng *game.Engine) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if err := game.Play(ctx, conn, conn, eng); err != nil {
		return fmt.Errorf("play %s: %w", addr, err)
	}
	return nil
}
