// Package config provides configuration management for the leaguerank CLI.
//
// Configuration is layered with koanf: defaults, then an optional
// leaguerank.yaml, then LEAGUERANK_* environment variables, then explicitly
// set CLI flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// OutputFormat selects how standings are rendered:
	// text (default), markdown, json, table, or auto.
	OutputFormat string `koanf:"output"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// Color toggles styled output in watch mode.
	Color bool `koanf:"color"`
}

// Default configuration values.
const (
	// DefaultOutput is the canonical plain standings lines. The "auto"
	// mode (TTY=text, non-TTY=markdown) is opt-in so scripted runs get
	// the plain lines without a flag.
	DefaultOutput = "text"
	DefaultColor  = true
)
