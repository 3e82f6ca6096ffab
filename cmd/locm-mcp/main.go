package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/locm/internal/config"
	locmmcp "github.com/peterkuimelis/locm/internal/mcp"
)

func main() {
	path := flag.String("config", config.PathFromEnv(), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := server.NewMCPServer("locm", "1.0.0")
	locmmcp.NewGames(cfg.EngineConfig(nil)).RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
