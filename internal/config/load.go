package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "ASYNCOMPLETE_"

// Load builds the effective configuration: defaults, then the file at
// path if it exists, then environment overrides. A missing file is not an
// error; an invalid one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile unmarshals path over cfg, choosing the parser by extension.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return nil
}

// lookupFunc matches os.LookupEnv; tests substitute their own.
type lookupFunc func(string) (string, bool)

// applyEnv overrides individual settings from the environment.
func applyEnv(cfg *Config, lookup lookupFunc) {
	if v, ok := lookup(EnvPrefix + "ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Completion.Enabled = b
		}
	}
	if v, ok := lookup(EnvPrefix + "SNIPPET_POLICY"); ok {
		cfg.Completion.SnippetPolicy = SnippetPolicy(v)
	}
	if v, ok := lookup(EnvPrefix + "TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Completion.Timeout = d
		}
	}
	if v, ok := lookup(EnvPrefix + "CACHE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Cache.Size = n
		}
	}
	if v, ok := lookup(EnvPrefix + "CACHE_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = d
		}
	}
	if v, ok := lookup(EnvPrefix + "MAX_VISIBLE_ITEMS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UI.MaxVisibleItems = n
		}
	}
	if v, ok := lookup(EnvPrefix + "SHOW_ICONS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.ShowIcons = b
		}
	}
}
