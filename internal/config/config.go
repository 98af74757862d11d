package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultPath              = "~/.roommind/config.toml"
	DefaultModel             = "gemini-2.5-flash"
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerSecond = 1.0
	DefaultBurst             = 2
	DefaultLogLevel          = "info"
	DefaultProvider          = ProviderGemini
)

// Model providers
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

// Duration is a time.Duration written as a string ("30s") in TOML
type Duration time.Duration

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config is the runtime configuration
type Config struct {
	Provider          string   `toml:"provider"`
	APIKey            string   `toml:"api_key"`
	Model             string   `toml:"model"`
	Timeout           Duration `toml:"timeout"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Burst             int      `toml:"burst"`
	AnchorsFile       string   `toml:"anchors_file"`
	LogFile           string   `toml:"log_file"`
	LogLevel          string   `toml:"log_level"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Provider:          DefaultProvider,
		Model:             DefaultModel,
		Timeout:           Duration(DefaultTimeout),
		RequestsPerSecond: DefaultRequestsPerSecond,
		Burst:             DefaultBurst,
		LogLevel:          DefaultLogLevel,
	}
}

// Path returns the config file path from ROOMMIND_CONFIG env var,
// falling back to DefaultPath.
func Path() string {
	if env := os.Getenv("ROOMMIND_CONFIG"); env != "" {
		return env
	}
	return DefaultPath
}

// Load builds the configuration: defaults, then the TOML file at path,
// then environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(ExpandHome(path))
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	cfg.AnchorsFile = ExpandHome(cfg.AnchorsFile)
	cfg.LogFile = ExpandHome(cfg.LogFile)
	return cfg, nil
}

// applyEnv overrides file values with environment variables
func applyEnv(cfg *Config) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.APIKey = key
	} else if key := os.Getenv("API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if provider := os.Getenv("ROOMMIND_PROVIDER"); provider != "" {
		cfg.Provider = provider
	}
	if model := os.Getenv("ROOMMIND_MODEL"); model != "" {
		cfg.Model = model
	}
	if anchors := os.Getenv("ROOMMIND_ANCHORS"); anchors != "" {
		cfg.AnchorsFile = anchors
	}
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative")
	}
	switch c.Provider {
	case ProviderGemini, ProviderClaude:
	default:
		return fmt.Errorf("unknown provider %q (expected gemini or claude)", c.Provider)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q (expected debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// TimeoutDuration returns the per-call AI timeout
func (c Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout)
}

// Save writes the configuration as TOML, creating the parent directory
func Save(path string, cfg Config) error {
	path = ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
