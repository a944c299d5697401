// Package config loads and watches the completion host configuration.
//
// Configuration merges three layers, lowest priority first: built-in
// defaults, a TOML or YAML config file, and ASYNCOMPLETE_* environment
// variables. Watch provides debounced live reload on top of fsnotify.
package config
