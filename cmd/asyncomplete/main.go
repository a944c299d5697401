// Package main is the asyncomplete terminal demo: a one-buffer scratchpad
// wired to the asynchronous completion pipeline and a word-list engine.
package main

import (
	"flag"
	"fmt"
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file (TOML or YAML)")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "asyncomplete - completion pipeline demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: asyncomplete [options]\n\n")
		fmt.Fprintf(os.Stderr, "Keys: type to trigger completion, Ctrl+Space invokes,\n")
		fmt.Fprintf(os.Stderr, "Tab/Enter commits, Esc dismisses, F1 describes, Ctrl+C quits.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("asyncomplete %s (%s)\n", version, commit)
		return 0
	}

	app, err := newApp(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer app.Shutdown()

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
