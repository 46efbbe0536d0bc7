package config

import (
	"encoding/json"

	"streamseg/internal/registry"
)

// Config is the run's read-only configuration, parsed once at
// startup and never mutated afterward. JSON/YAML keys use
// snake_case; unknown fields fail at load time.
type Config struct {
	Logging Logging `json:"logging" yaml:"logging"`

	// Session selects which fixed production roster a "push" run
	// drives: "block" or "inline".
	Session string `json:"session" yaml:"session"`

	// Stats turns on the word-count side-channel over PLAIN_TEXT runs.
	Stats bool `json:"stats" yaml:"stats"`

	// Format selects the CLI's output rendering: "wire", "json", or
	// "pretty".
	Format string `json:"format" yaml:"format"`

	// DebugRoster, when non-empty, overrides the fixed production
	// roster with an arbitrary plugin list built through
	// internal/registry. Never used outside diagnostics.
	DebugRoster []registry.PluginSpec `json:"debug_roster" yaml:"debug_roster"`
}

// Logging holds the only configurable logging knobs; output path and
// rotation policy are fixed defaults (see internal/diag).
type Logging struct {
	Level string `json:"level" yaml:"level"`
}

// RawOptions is exposed for callers that need to pass an already
// decoded JSON tree through unchanged (e.g. forwarding CLI flag JSON
// into a DebugRoster entry's Options field).
type RawOptions = json.RawMessage
