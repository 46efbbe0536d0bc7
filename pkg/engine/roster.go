package engine

import (
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

// NewBlockSession builds a session with the fixed block-level roster.
// Roster order sets grammar precedence: on simultaneous commit the
// lowest-indexed plugin wins.
func NewBlockSession() *Session {
	return newSession([]entry{
		{plugin: planexec.New(true), tag: segment.PlanExecution},
		{plugin: header.New(true), tag: segment.Header},
		{plugin: fencedcode.New(true), tag: segment.CodeBlock},
		{plugin: blockquote.New(false), tag: segment.BlockQuote},
		{plugin: orderedlist.New(true), tag: segment.OrderedList},
		{plugin: unorderedlist.New(false), tag: segment.UnorderedList},
		{plugin: hrule.New(true), tag: segment.HorizontalRule},
		{plugin: blocklatexdollar.New(false), tag: segment.BlockLatex},
		{plugin: blocklatexbracket.New(true), tag: segment.BlockLatex},
		{plugin: table.New(true), tag: segment.Table},
		{plugin: image.New(true), tag: segment.Image},
		{plugin: xmlblock.New(true), tag: segment.XMLBlock},
	})
}

// RosterEntry names one plugin instance and the tag its matches are
// emitted under, for use with NewCustomSession.
type RosterEntry struct {
	Plugin segment.Plugin
	Tag    segment.Tag
}

// NewCustomSession builds a session from an arbitrary roster. This is
// exposed only for diagnostics (internal/registry's debug roster
// override); production code must use NewBlockSession or
// NewInlineSession so grammar precedence stays fixed.
func NewCustomSession(roster []RosterEntry) *Session {
	entries := make([]entry, len(roster))
	for i, r := range roster {
		entries[i] = entry{plugin: r.Plugin, tag: r.Tag}
	}
	return newSession(entries)
}

// NewInlineSession builds a session with the fixed inline-level
// roster.
func NewInlineSession() *Session {
	return newSession([]entry{
		{plugin: bold.New(false), tag: segment.Bold},
		{plugin: italic.New(false), tag: segment.Italic},
		{plugin: inlinecode.New(false), tag: segment.InlineCode},
		{plugin: link.New(), tag: segment.Link},
		{plugin: strikethrough.New(false), tag: segment.Strikethrough},
		{plugin: underline.New(true), tag: segment.Underline},
		{plugin: latexdollar.New(false), tag: segment.InlineLatex},
		{plugin: latexparen.New(true), tag: segment.InlineLatex},
	})
}
