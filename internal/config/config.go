// Package config resolves traworker settings from an optional TOML file and
// TRAWORKER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const maxPrecision = 6

// Config holds the settings shared by every command.
type Config struct {
	DBPath      string `toml:"db_path"`
	TablePath   string `toml:"table_path"`
	TableSheet  string `toml:"table_sheet"`
	Precision   int    `toml:"precision"`
	LogUseCases bool   `toml:"log_usecases"`
	Format      string `toml:"format"`
}

// DefaultConfig returns the built-in settings. The database lives under
// ~/.traworker unless the home directory cannot be found.
func DefaultConfig() Config {
	return Config{
		DBPath:     filepath.Join(homeDir(), "traworker.db"),
		TableSheet: "TRAlookup",
		Precision:  2,
		Format:     "auto",
	}
}

// DefaultPath is where Load looks for a config file when TRAWORKER_CONFIG is
// unset.
func DefaultPath() string {
	return filepath.Join(homeDir(), "config.toml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".traworker"
	}
	return filepath.Join(home, ".traworker")
}

// Load reads the config file at path, or TRAWORKER_CONFIG, or DefaultPath,
// then applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("TRAWORKER_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}

	if err := loadTOML(&cfg, path); err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("reading config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// applyEnv overlays TRAWORKER_* variables. Malformed values are errors, and
// the overlaid config is range-checked by Validate like the file is.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("TRAWORKER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TRAWORKER_TABLE"); v != "" {
		cfg.TablePath = v
	}
	if v := os.Getenv("TRAWORKER_TABLE_SHEET"); v != "" {
		cfg.TableSheet = v
	}
	if v := os.Getenv("TRAWORKER_PRECISION"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("TRAWORKER_PRECISION: not an integer: %q", v)
		}
		cfg.Precision = n
	}
	if v := os.Getenv("TRAWORKER_LOG_USECASES"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("TRAWORKER_LOG_USECASES: not a boolean: %q", v)
		}
		cfg.LogUseCases = b
	}
	if v := os.Getenv("TRAWORKER_FORMAT"); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	return nil
}

// Validate rejects settings no command can work with.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", maxPrecision, c.Precision)
	}
	switch c.Format {
	case "auto", "table", "json", "yaml":
	default:
		return fmt.Errorf("format must be one of auto, table, json, yaml; got %q", c.Format)
	}
	return nil
}
