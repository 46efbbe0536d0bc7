// Package xmlsplit implements a stateless, one-shot split of a whole
// document into default and XML-tagged regions. Unlike pkg/engine, it
// takes the entire input at once and carries no state across calls.
package xmlsplit

import (
	"streamseg/internal/plugins/shared/xmlblock"
	"streamseg/pkg/segment"
)

// Region tags used by Split. These are local to this package and
// distinct from segment.Tag: Default marks plain document text,
// XML marks a matched tagged region.
const (
	Default segment.Tag = 0
	XML     segment.Tag = 1
)

// Split scans chunk once and returns Default/XML regions covering the
// whole input with no gaps and no overlaps.
func Split(chunk []uint16) []segment.Segment {
	var out []segment.Segment

	plugin := xmlblock.New(true)
	plugin.InitPlugin()

	active := false
	activeStart := -1
	defaultStart := 0
	evalStart := -1
	atStartOfLine := true

	flushDefault := func(endExclusive int) {
		if defaultStart < endExclusive {
			out = append(out, segment.Segment{Tag: Default, Start: defaultStart, End: endExclusive})
		}
		defaultStart = endExclusive
	}

	closeActive := func(endExclusive int) {
		if active && activeStart >= 0 && activeStart < endExclusive {
			out = append(out, segment.Segment{Tag: XML, Start: activeStart, End: endExclusive})
		}
		active = false
		activeStart = -1
	}

	for i, c := range chunk {
		isAtStartForCurrent := atStartOfLine
		atStartOfLine = c == '\n'

		if active {
			plugin.ProcessChar(c, isAtStartForCurrent)
			if plugin.State() != segment.Processing {
				closeActive(i + 1)
				defaultStart = i + 1
			}
			continue
		}

		if evalStart == -1 {
			evalStart = i
		}

		plugin.ProcessChar(c, isAtStartForCurrent)

		if plugin.State() == segment.Processing {
			flushDefault(evalStart)
			active = true
			activeStart = evalStart
			evalStart = -1
		} else if plugin.State() != segment.Trying {
			evalStart = -1
		}
	}

	if active {
		closeActive(len(chunk))
		defaultStart = len(chunk)
	}

	flushDefault(len(chunk))
	return out
}
