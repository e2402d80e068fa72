package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Laman1911/AS-Calculation/pkg/storage"
)

// Config holds workspace settings read from config.yaml and KALK_* environment variables.
type Config struct {
	DBPath        string        `yaml:"db_path"`
	HTTPAddr      string        `yaml:"http_addr"`
	MCPAddr       string        `yaml:"mcp_addr"`
	LogLevel      string        `yaml:"log_level"`
	Currency      string        `yaml:"currency"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		DBPath:        storage.DBFile,
		HTTPAddr:      ":8080",
		MCPAddr:       ":8090",
		LogLevel:      "info",
		Currency:      "DKK",
		WatchDebounce: 300 * time.Millisecond,
	}
}

// Load reads the workspace config file, if any, and applies environment overrides.
func Load(root string) (*Config, error) {
	cfg := Default()

	path, err := storage.NewWorkspace(root).ResolvePath(storage.ConfigFile)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func Save(root string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	path, err := storage.NewWorkspace(root).ResolvePath(storage.ConfigFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("KALK_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("KALK_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("KALK_MCP_ADDR"); v != "" {
		cfg.MCPAddr = v
	}
	if v := os.Getenv("KALK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KALK_CURRENCY"); v != "" {
		cfg.Currency = v
	}
}

// ResolveDBPath returns the database location. Relative paths live in the workspace directory.
func (c *Config) ResolveDBPath(root string) string {
	if filepath.IsAbs(c.DBPath) {
		return c.DBPath
	}
	return filepath.Join(root, storage.WorkspaceDir, c.DBPath)
}

// Level maps LogLevel to a slog level. Unknown values fall back to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
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

// NewLogger builds a text logger at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
