package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/peterkuimelis/locm/internal/config"
	"github.com/peterkuimelis/locm/internal/game"
	"github.com/peterkuimelis/locm/internal/log"
	locmnet "github.com/peterkuimelis/locm/internal/net"
)

func main() {
	cmd, args := "play", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cmd {
	case "play":
		err = runPlay(ctx, args)
	case "serve":
		err = runServe(ctx, args)
	case "connect":
		err = runConnect(ctx, args)
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  locm [play] [--config FILE] [--debug]")
	fmt.Println("  locm serve [--config FILE] [--addr ADDR] [--debug]")
	fmt.Println("  locm connect [--config FILE] [--addr ADDR] [--debug]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play     Play one game over stdin/stdout, reasoning on stderr")
	fmt.Println("  serve    Accept TCP connections and play one game per connection")
	fmt.Println("  connect  Dial a game host and play one game over the connection")
}

// parseFlags loads the config and applies the shared flags. withAddr adds
// --addr for the network commands.
func parseFlags(name string, args []string, withAddr bool) (config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	path := fs.String("config", config.PathFromEnv(), "path to YAML config file")
	debug := fs.Bool("debug", false, "log debug reasoning (scores, defenders, deck)")
	var addr *string
	if withAddr {
		addr = fs.String("addr", "", "address to listen on or dial (default from config)")
	}
	fs.Parse(args)

	cfg, err := config.Load(*path)
	if err != nil {
		return config.Config{}, err
	}
	if *debug {
		cfg.Debug = true
	}
	if addr != nil && *addr != "" {
		cfg.Addr = *addr
	}
	return cfg, nil
}

func newSlog(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runPlay(ctx context.Context, args []string) error {
	cfg, err := parseFlags("play", args, false)
	if err != nil {
		return err
	}
	eng := game.NewEngine(cfg.EngineConfig(log.NewTextLogger(os.Stderr, cfg.Debug)))
	return game.Play(ctx, os.Stdin, os.Stdout, eng)
}

func runServe(ctx context.Context, args []string) error {
	cfg, err := parseFlags("serve", args, true)
	if err != nil {
		return err
	}
	logger := newSlog(cfg.Debug)
	srv := &locmnet.Server{
		Addr:   cfg.Addr,
		Engine: locmnet.NewEngineFactory(cfg.EngineConfig(nil)),
		Logger: logger,
	}
	logger.Info("locm listening", "addr", cfg.Addr)
	return srv.Run(ctx)
}

func runConnect(ctx context.Context, args []string) error {
	cfg, err := parseFlags("connect", args, true)
	if err != nil {
		return err
	}
	eng := game.NewEngine(cfg.EngineConfig(log.NewSlogLogger(newSlog(cfg.Debug))))
	return locmnet.Connect(ctx, cfg.Addr, eng)
}
