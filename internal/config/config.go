package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/locm/internal/game"
	"github.com/peterkuimelis/locm/internal/log"
)

// Config is the bot's strategy and runtime configuration.
type Config struct {
	DraftTurns   int     `yaml:"draft_turns" env:"LOCM_DRAFT_TURNS"`
	AbilityBonus float64 `yaml:"ability_bonus" env:"LOCM_ABILITY_BONUS"`
	Debug        bool    `yaml:"debug" env:"LOCM_DEBUG"`
	Addr         string  `yaml:"addr" env:"LOCM_ADDR"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		DraftTurns:   game.DefaultDraftTurns,
		AbilityBonus: game.DefaultAbilityBonus,
		Addr:         ":9000",
	}
}

// Load builds a Config from defaults, then the YAML file at path (if path
// is non-empty), then LOCM_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config YAML: %w", err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PathFromEnv returns the config file named by LOCM_CONFIG, if any.
func PathFromEnv() string {
	return os.Getenv("LOCM_CONFIG")
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.DraftTurns < 0 {
		errs = append(errs, fmt.Errorf("draft_turns must be >= 0, got %d", c.DraftTurns))
	}
	if c.AbilityBonus < 0 {
		errs = append(errs, fmt.Errorf("ability_bonus must be >= 0, got %g", c.AbilityBonus))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// EngineConfig returns the engine settings with the given logger attached.
func (c Config) EngineConfig(logger log.EventLogger) game.EngineConfig {
	return game.EngineConfig{
		DraftTurns:   c.DraftTurns,
		AbilityBonus: c.AbilityBonus,
		Logger:       logger,
	}
}
