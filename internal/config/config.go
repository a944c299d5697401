package config

import (
	"fmt"
	"time"
)

// SnippetPolicy names a snippet-trigger rewrite policy in config files.
type SnippetPolicy string

const (
	SnippetPolicyNone        SnippetPolicy = "none"
	SnippetPolicyQuestionTab SnippetPolicy = "question-tab"
)

// Config is the completion host configuration.
type Config struct {
	Completion CompletionConfig `toml:"completion" yaml:"completion"`
	Cache      CacheConfig      `toml:"cache" yaml:"cache"`
	UI         UIConfig         `toml:"ui" yaml:"ui"`
}

// CompletionConfig controls trigger and computation behavior.
type CompletionConfig struct {
	// Enabled turns the whole pipeline on or off.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// SnippetPolicy selects the snippet-trigger rewrite behavior for
	// engines that do not declare their own.
	SnippetPolicy SnippetPolicy `toml:"snippet_policy" yaml:"snippet_policy"`

	// Timeout bounds a single candidate computation.
	Timeout time.Duration `toml:"timeout" yaml:"timeout"`
}

// CacheConfig sizes the computed-result cache.
type CacheConfig struct {
	// Size is the maximum number of cached candidate lists.
	Size int `toml:"size" yaml:"size"`

	// TTL is how long an entry stays valid.
	TTL time.Duration `toml:"ttl" yaml:"ttl"`
}

// UIConfig controls the presentation surface.
type UIConfig struct {
	// MaxVisibleItems caps the popup height in rows.
	MaxVisibleItems int `toml:"max_visible_items" yaml:"max_visible_items"`

	// ShowIcons toggles tag icons in the popup.
	ShowIcons bool `toml:"show_icons" yaml:"show_icons"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Completion: CompletionConfig{
			Enabled:       true,
			SnippetPolicy: SnippetPolicyQuestionTab,
			Timeout:       2 * time.Second,
		},
		Cache: CacheConfig{
			Size: 64,
			TTL:  5 * time.Second,
		},
		UI: UIConfig{
			MaxVisibleItems: 10,
			ShowIcons:       true,
		},
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	switch c.Completion.SnippetPolicy {
	case SnippetPolicyNone, SnippetPolicyQuestionTab:
	default:
		return &ValidationError{
			Field:   "completion.snippet_policy",
			Value:   c.Completion.SnippetPolicy,
			Message: fmt.Sprintf("unknown policy %q", c.Completion.SnippetPolicy),
		}
	}
	if c.Completion.Timeout < 0 {
		return &ValidationError{
			Field:   "completion.timeout",
			Value:   c.Completion.Timeout,
			Message: "must not be negative",
		}
	}
	if c.Cache.Size < 0 {
		return &ValidationError{
			Field:   "cache.size",
			Value:   c.Cache.Size,
			Message: "must not be negative",
		}
	}
	if c.Cache.TTL < 0 {
		return &ValidationError{
			Field:   "cache.ttl",
			Value:   c.Cache.TTL,
			Message: "must not be negative",
		}
	}
	if c.UI.MaxVisibleItems < 1 {
		return &ValidationError{
			Field:   "ui.max_visible_items",
			Value:   c.UI.MaxVisibleItems,
			Message: "must be at least 1",
		}
	}
	return nil
}
