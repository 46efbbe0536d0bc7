package config

import (
	"fmt"

	"streamseg/internal/registry"
)

// Validate checks the minimal invariants this config needs before a
// run starts: a known session kind, a known output format, and (when
// present) a resolvable debug roster.
func Validate(cfg Config) error {
	switch cfg.Session {
	case "block", "inline":
	default:
		return fmt.Errorf("config: unknown session %q, want %q or %q", cfg.Session, "block", "inline")
	}

	switch cfg.Format {
	case "wire", "json", "pretty":
	default:
		return fmt.Errorf("config: unknown format %q, want one of %q, %q, %q", cfg.Format, "wire", "json", "pretty")
	}

	for i, spec := range cfg.DebugRoster {
		if spec.Name == "" {
			return fmt.Errorf("config: debug_roster[%d] missing name", i)
		}
		if _, ok := registry.Plugin[spec.Name]; !ok {
			return fmt.Errorf("config: debug_roster[%d]: %w: %q", i, ErrUnknownPlugin, spec.Name)
		}
	}

	return nil
}

// AssembleRoster resolves cfg's DebugRoster into built plugins, ready
// to hand to engine.NewCustomSession. It returns an empty slice when
// no override is configured.
func AssembleRoster(cfg Config) ([]registry.Built, error) {
	if len(cfg.DebugRoster) == 0 {
		return nil, nil
	}
	return registry.Build(cfg.DebugRoster)
}
