package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/peterkuimelis/locm/internal/config"
	"github.com/peterkuimelis/locm/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	path := flag.String("config", config.PathFromEnv(), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := web.NewServer(cfg.EngineConfig(nil), logger)
	addr := fmt.Sprintf(":%d", *port)
	logger.Info("locm web listening", "url", fmt.Sprintf("http://localhost:%d", *port))
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
