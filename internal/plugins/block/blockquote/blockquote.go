// Package blockquote recognizes SOL-anchored "> " block quotes. A
// newline while PROCESSING moves to WAITFOR so the session engine can
// ask, on the next character, whether the following line continues
// the quote.
package blockquote

import "streamseg/pkg/segment"

type Plugin struct {
	includeMarker bool

	state      segment.State
	matchIndex int
}

func New(includeMarker bool) *Plugin {
	p := &Plugin{includeMarker: includeMarker}
	p.Reset()
	return p
}

func (p *Plugin) State() segment.State { return p.state }

func (p *Plugin) InitPlugin() bool {
	p.Reset()
	return true
}

func (p *Plugin) Reset() {
	p.state = segment.Idle
	p.matchIndex = 0
}

func (p *Plugin) ProcessChar(c uint16, atStartOfLine bool) bool {
	if c == '\n' {
		if p.state == segment.Processing {
			p.state = segment.WaitFor
		} else {
			p.Reset()
		}
		return true
	}

	if p.state == segment.WaitFor {
		if atStartOfLine {
			if c == '>' {
				p.state = segment.Processing
				p.matchIndex = 1
				// Observed behavior: keep even when includeMarker is
				// false, unlike the initial '>'. Preserved as-is.
				return true
			}
			p.Reset()
			return true
		}
	}

	if atStartOfLine {
		if p.matchIndex == 0 {
			if c == '>' {
				p.matchIndex = 1
				p.state = segment.Trying
				return p.includeMarker
			}
			return true
		}
		if p.matchIndex == 1 {
			if c == ' ' {
				p.state = segment.Processing
				p.matchIndex = 0
				return p.includeMarker
			}
			p.Reset()
			return true
		}
	}

	if p.state == segment.Processing {
		return true
	}

	if p.state == segment.Trying {
		if p.matchIndex == 1 {
			if c == ' ' {
				p.state = segment.Processing
				p.matchIndex = 0
				return p.includeMarker
			}
			p.Reset()
			return true
		}
	}

	return true
}
