// Package config loads Aocla's ambient configuration file (SPEC_FULL.md
// §3.2): presentation and REPL defaults the core interpreter itself never
// consults directly.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds every ambient setting an ~/.aoclarc.yaml may override.
type Config struct {
	// Color is "auto" (detect terminal), "always", or "never".
	Color       string   `yaml:"color"`
	HistoryFile string   `yaml:"history_file"`
	StackPreview int     `yaml:"stack_preview"`
	Prelude     []string `yaml:"prelude"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Color:        "auto",
		HistoryFile:  "~/.aocla_history",
		StackPreview: 10,
		Prelude:      nil,
	}
}

// path resolves the config file location: $AOCLA_CONFIG if set, otherwise
// ~/.aoclarc.yaml.
func path() string {
	if p := os.Getenv("AOCLA_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aoclarc.yaml")
}

// Load reads the config file, falling back to Default() when it is absent,
// and reporting (never failing on) a malformed file to stderr — §7 reserves
// Fatal for allocator failure only, so a bad config file is just a warning.
func Load() *Config {
	cfg := Default()
	p := path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "aocla: reading config %s: %v\n", p, err)
		}
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "aocla: malformed config %s: %v (using defaults)\n", p, err)
		return Default()
	}
	return cfg
}

// ExpandHome expands a leading "~" in p to the user's home directory.
func ExpandHome(p string) string {
	if len(p) == 0 || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
