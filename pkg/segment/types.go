// Package segment defines the wire data model shared by every plugin
// and by the session engine: the closed tag enum, the Segment triple,
// and the plugin state enum.
package segment

// Tag identifies the construct a Segment belongs to. The ordinal
// values are fixed for wire compatibility with downstream consumers
// and must never be renumbered.
type Tag int16

const (
	Header Tag = iota
	BlockQuote
	CodeBlock
	OrderedList
	UnorderedList
	HorizontalRule
	BlockLatex
	Table
	XMLBlock
	PlanExecution
	Bold
	Italic
	InlineCode
	Link
	Image
	Strikethrough
	Underline
	InlineLatex
	PlainText
)

// SegBreak is a sentinel tag used only as a group-boundary marker
// between two construct instances of the same tag. Consumers must
// treat it as "close current group" and never surface it as content.
const SegBreak Tag = -1

// Segment is a half-open character range tagged with a construct.
// For SegBreak, Start == End == the boundary position.
type Segment struct {
	Tag   Tag
	Start int
	End   int
}

// State is a plugin's position in its per-construct lifecycle.
type State int

const (
	// Idle: no hypothesis active. Valid initial state.
	Idle State = iota
	// Trying: consuming a candidate prefix; not yet committed.
	Trying
	// Processing: committed; consuming body characters.
	Processing
	// WaitFor: body nominally ended; one lookahead character needed
	// before the plugin can decide to close or keep processing.
	WaitFor
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Trying:
		return "trying"
	case Processing:
		return "processing"
	case WaitFor:
		return "waitfor"
	default:
		return "unknown"
	}
}
