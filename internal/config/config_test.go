package config

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "unknown snippet policy",
			mutate: func(c *Config) { c.Completion.SnippetPolicy = "tab-tab" },
			field:  "completion.snippet_policy",
		},
		{
			name:   "negative timeout",
			mutate: func(c *Config) { c.Completion.Timeout = -time.Second },
			field:  "completion.timeout",
		},
		{
			name:   "negative cache size",
			mutate: func(c *Config) { c.Cache.Size = -1 },
			field:  "cache.size",
		},
		{
			name:   "negative cache ttl",
			mutate: func(c *Config) { c.Cache.TTL = -time.Second },
			field:  "cache.ttl",
		},
		{
			name:   "zero visible items",
			mutate: func(c *Config) { c.UI.MaxVisibleItems = 0 },
			field:  "ui.max_visible_items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestValidateAcceptsBothPolicies(t *testing.T) {
	for _, policy := range []SnippetPolicy{SnippetPolicyNone, SnippetPolicyQuestionTab} {
		cfg := Default()
		cfg.Completion.SnippetPolicy = policy
		if err := cfg.Validate(); err != nil {
			t.Errorf("policy %q rejected: %v", policy, err)
		}
	}
}
