package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/guessgrid.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/guessgrid.yaml.
func Default() Config {
	return Config{
		Game: GameConfig{
			Difficulty: "EASY",
		},
		Storage: StorageConfig{
			Path:   "~/.guessgrid/guessgrid.db",
			Player: "local",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.guessgrid/guessgrid.log",
		},
		Server: ServerConfig{
			Address:     "0.0.0.0:23234",
			HostKey:     ".ssh/guessgrid_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
