// Package config loads the optional YAML configuration shared by all
// commands. Every field has a default so the tools run with no file at
// all; flags override whatever the file says.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "FITNESS_AI_CONFIG"

// Config holds all shared settings.
type Config struct {
	DataPath    string `yaml:"data_path"`    // CSV meal log
	DBPath      string `yaml:"db_path"`      // SQLite meal log, used when set and --db given
	ModelDir    string `yaml:"model_dir"`    // artifact directory
	ProfilePath string `yaml:"profile_path"` // optional user profile JSON
	LogLevel    string `yaml:"log_level"`
}

// Defaults returns a Config with all default values set.
func Defaults() Config {
	return Config{
		DataPath:    "data.csv",
		DBPath:      "meals.db",
		ModelDir:    "models",
		ProfilePath: "profile.json",
		LogLevel:    "info",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not
// an error: the defaults apply. The FITNESS_AI_CONFIG environment
// variable overrides path when set.
func Load(path string) (Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ModelPath is the model artifact location under ModelDir.
func (c Config) ModelPath() string { return filepath.Join(c.ModelDir, "model_gb.bin") }

// MetaPath is the metadata location under ModelDir.
func (c Config) MetaPath() string { return filepath.Join(c.ModelDir, "metadata.json") }

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger installs a text slog handler on stderr at the configured level.
func (c Config) SetupLogger() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.SlogLevel()})
	slog.SetDefault(slog.New(h))
}
