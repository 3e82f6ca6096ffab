package game

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Play runs the host protocol: read a turn snapshot from in, write one
// command line to out, repeat. It returns nil when the input ends between
// turns and an error wrapping ErrMalformedInput on a protocol violation.
func Play(ctx context.Context, in io.Reader, out io.Writer, eng *Engine) error {
	tr := NewTurnReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ts, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("turn %d: %w", eng.Turn()+1, err)
		}
		line := FormatActions(eng.PlayTurn(ts))
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write actions: %w", err)
		}
	}
}
