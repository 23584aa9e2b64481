// Package config loads tada settings from defaults, a TOML file, the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultCharLimit = 200
	DefaultLogLevel  = "info"

	configDirName  = "tada"
	configFileName = "config.toml"
)

// Config holds display and diagnostics settings. Tasks are never configured.
type Config struct {
	Dark      bool      `toml:"dark"`
	CharLimit int       `toml:"char_limit"`
	Log       LogConfig `toml:"log"`

	// Path of the config file that was applied, empty if none.
	File string `toml:"-"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Load resolves configuration in priority order:
// 1. Defaults
// 2. Config file (-config, else the user config dir)
// 3. Environment variables (TADA_*)
// 4. CLI flags
//
// Remaining positional args are returned for the subcommand router.
func Load(fs *flag.FlagSet, args []string) (*Config, []string, error) {
	cfg := &Config{}
	setDefaults(cfg)

	var (
		configPath string
		dark       bool
		logFile    string
		logLevel   string
		charLimit  int
	)
	fs.StringVar(&configPath, "config", "", "path to a TOML config file")
	fs.BoolVar(&dark, "dark", false, "start in dark mode")
	fs.StringVar(&logFile, "log-file", "", "write debug logs to this file")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.IntVar(&charLimit, "char-limit", 0, "maximum task length in characters")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	path := configPath
	if path == "" {
		path = findUserConfigFile()
	}
	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			// An explicit -config must exist; the default location is optional.
			if configPath != "" || !errors.Is(err, os.ErrNotExist) {
				return nil, nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		} else {
			cfg.File = path
		}
	}

	loadFromEnv(cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dark":
			cfg.Dark = dark
		case "log-file":
			cfg.Log.File = logFile
		case "log-level":
			cfg.Log.Level = logLevel
		case "char-limit":
			cfg.CharLimit = charLimit
		}
	})

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

func setDefaults(cfg *Config) {
	cfg.Dark = false
	cfg.CharLimit = DefaultCharLimit
	cfg.Log.Level = DefaultLogLevel
}

func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TADA_DARK"); v != "" {
		cfg.Dark = boolFromString(v)
	}
	if v := os.Getenv("TADA_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TADA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TADA_CHAR_LIMIT"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.CharLimit = n
		}
	}
}

func (c *Config) validate() error {
	if c.CharLimit < 0 {
		return fmt.Errorf("char_limit must not be negative, got %d", c.CharLimit)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// findUserConfigFile returns the first existing config file, or "".
func findUserConfigFile() string {
	var candidates []string
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, configDirName, configFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "."+configDirName, configFileName))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
