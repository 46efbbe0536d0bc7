package registry

import (
	"encoding/json"
	"fmt"

	"streamseg/pkg/segment"
)

// PluginSpec names one roster entry for the debug override: the
// registered plugin name, the tag its matches are emitted under, and
// its raw JSON options (may be empty to take zero-value defaults).
type PluginSpec struct {
	Name    string          `json:"name"`
	Tag     segment.Tag     `json:"tag"`
	Options json.RawMessage `json:"options"`
}

// Built pairs a constructed plugin with its emission tag, ready to
// hand to an ad hoc engine roster for diagnostics.
type Built struct {
	Plugin segment.Plugin
	Tag    segment.Tag
}

// Build resolves each spec against the Plugin factory table. It
// returns segment.ErrUnknownPlugin, wrapped with the offending name,
// on the first unresolvable entry.
func Build(specs []PluginSpec) ([]Built, error) {
	out := make([]Built, 0, len(specs))
	for _, spec := range specs {
		ctor, ok := Plugin[spec.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", segment.ErrUnknownPlugin, spec.Name)
		}
		p, err := ctor(spec.Options)
		if err != nil {
			return nil, fmt.Errorf("building plugin %q: %w", spec.Name, err)
		}
		out = append(out, Built{Plugin: p, Tag: spec.Tag})
	}
	return out, nil
}
