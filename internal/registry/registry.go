// Package registry provides a name-keyed plugin factory table used
// only for the debug roster override (the config's debug_roster list,
// which cmd/streamseg's push applies): assembling an arbitrary subset of
// plugins outside the two fixed production rosters in pkg/engine.
// Production code must always go through engine.NewBlockSession /
// engine.NewInlineSession, never through this table.
package registry

import (
	"bytes"
	"encoding/json"

	"streamseg/internal/plugins/block/blocklatexbracket"
	"streamseg/internal/plugins/block/blocklatexdollar"
	"streamseg/internal/plugins/block/blockquote"
	"streamseg/internal/plugins/block/fencedcode"
	"streamseg/internal/plugins/block/header"
	"streamseg/internal/plugins/block/hrule"
	"streamseg/internal/plugins/block/image"
	"streamseg/internal/plugins/block/orderedlist"
	"streamseg/internal/plugins/block/planexec"
	"streamseg/internal/plugins/block/table"
	"streamseg/internal/plugins/block/unorderedlist"
	"streamseg/internal/plugins/inline/bold"
	"streamseg/internal/plugins/inline/inlinecode"
	"streamseg/internal/plugins/inline/italic"
	"streamseg/internal/plugins/inline/latexdollar"
	"streamseg/internal/plugins/inline/latexparen"
	"streamseg/internal/plugins/inline/link"
	"streamseg/internal/plugins/inline/strikethrough"
	"streamseg/internal/plugins/inline/underline"
	"streamseg/internal/plugins/shared/xmlblock"
	"streamseg/pkg/segment"
)

// strictUnmarshal decodes raw with DisallowUnknownFields, rejecting
// unknown fields. An empty raw leaves v at its zero value.
func strictUnmarshal(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// NewPlugin is the factory signature every roster entry registers
// under: given raw JSON options, produce a segment.Plugin.
type NewPlugin func(raw json.RawMessage) (segment.Plugin, error)

// includeOptions is the shared options shape for every plugin whose
// only knob is whether to keep its delimiters/markers/tags in output.
type includeOptions struct {
	Include bool `json:"include"`
}

func withInclude(ctor func(include bool) segment.Plugin) NewPlugin {
	return func(raw json.RawMessage) (segment.Plugin, error) {
		var opts includeOptions
		if err := strictUnmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return ctor(opts.Include), nil
	}
}

// Plugin is the name-keyed factory table for every leaf plugin this
// module ships, block and inline alike.
var Plugin = map[string]NewPlugin{
	"planexec":          withInclude(func(b bool) segment.Plugin { return planexec.New(b) }),
	"header":            withInclude(func(b bool) segment.Plugin { return header.New(b) }),
	"fencedcode":        withInclude(func(b bool) segment.Plugin { return fencedcode.New(b) }),
	"blockquote":        withInclude(func(b bool) segment.Plugin { return blockquote.New(b) }),
	"orderedlist":       withInclude(func(b bool) segment.Plugin { return orderedlist.New(b) }),
	"unorderedlist":     withInclude(func(b bool) segment.Plugin { return unorderedlist.New(b) }),
	"hrule":             withInclude(func(b bool) segment.Plugin { return hrule.New(b) }),
	"blocklatexdollar":  withInclude(func(b bool) segment.Plugin { return blocklatexdollar.New(b) }),
	"blocklatexbracket": withInclude(func(b bool) segment.Plugin { return blocklatexbracket.New(b) }),
	"table":             withInclude(func(b bool) segment.Plugin { return table.New(b) }),
	"image":             withInclude(func(b bool) segment.Plugin { return image.New(b) }),
	"xmlblock":          withInclude(func(b bool) segment.Plugin { return xmlblock.New(b) }),

	"bold":           withInclude(func(b bool) segment.Plugin { return bold.New(b) }),
	"italic":         withInclude(func(b bool) segment.Plugin { return italic.New(b) }),
	"inlinecode":     withInclude(func(b bool) segment.Plugin { return inlinecode.New(b) }),
	"strikethrough":  withInclude(func(b bool) segment.Plugin { return strikethrough.New(b) }),
	"underline":      withInclude(func(b bool) segment.Plugin { return underline.New(b) }),
	"latexdollar":    withInclude(func(b bool) segment.Plugin { return latexdollar.New(b) }),
	"latexparen":     withInclude(func(b bool) segment.Plugin { return latexparen.New(b) }),
	"link": func(raw json.RawMessage) (segment.Plugin, error) {
		if err := strictUnmarshal(raw, &struct{}{}); err != nil {
			return nil, err
		}
		return link.New(), nil
	},
}
