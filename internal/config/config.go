// Package config provides YAML-based configuration loading for guessgrid,
// with environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/guessgrid/internal/game"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "GUESSGRID_"

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"    envPrefix:"GAME_"`
	Storage StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
	Log     LogConfig     `yaml:"log"     envPrefix:"LOG_"`
	Server  ServerConfig  `yaml:"server"  envPrefix:"SERVER_"`
}

// GameConfig holds round defaults.
type GameConfig struct {
	Difficulty string `yaml:"difficulty" env:"DIFFICULTY"`
	Seed       int64  `yaml:"seed"       env:"SEED"` // 0 = random
}

// StorageConfig locates the streak database.
type StorageConfig struct {
	Path   string `yaml:"path"   env:"PATH"`
	Player string `yaml:"player" env:"PLAYER"`
}

// LogConfig controls the charm logger.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file"  env:"FILE"` // Used while the TUI owns the terminal
}

// ServerConfig configures `guessgrid serve`.
type ServerConfig struct {
	Address        string        `yaml:"address"         env:"ADDRESS"`
	HostKey        string        `yaml:"host_key"        env:"HOST_KEY"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"    env:"IDLE_TIMEOUT"`
	MetricsAddress string        `yaml:"metrics_address" env:"METRICS_ADDRESS"`
}

// Difficulty returns the configured default difficulty.
func (c Config) Difficulty() (game.Difficulty, error) {
	return game.ParseDifficulty(c.Game.Difficulty)
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(strings.ToLower(c.Log.Level))
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Difficulty(); err != nil {
		errs = append(errs, fmt.Errorf("game.difficulty: %w", err))
	}
	if strings.TrimSpace(c.Storage.Player) == "" {
		errs = append(errs, errors.New("storage.player: must not be empty"))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, errors.New("server.idle_timeout: must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
