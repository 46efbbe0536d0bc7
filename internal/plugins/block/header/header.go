// Package header recognizes ATX-style headers: 1-6 '#' at the start
// of a line, followed by a single space, then PROCESSING until '\n'.
package header

import "streamseg/pkg/segment"

type Plugin struct {
	includeMarker bool

	state     segment.State
	hashCount int
	inMatch   bool
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
	p.hashCount = 0
	p.inMatch = false
}

func (p *Plugin) ProcessChar(c uint16, atStartOfLine bool) bool {
	if p.state == segment.Processing {
		if c == '\n' {
			p.Reset()
		}
		return true
	}

	if atStartOfLine {
		p.inMatch = true
		p.hashCount = 0
		p.state = segment.Idle
	}

	if !p.inMatch && p.state != segment.Trying {
		return true
	}

	if c == '#' {
		p.hashCount++
		p.state = segment.Trying
		return p.includeMarker
	}

	if c == ' ' && p.hashCount >= 1 && p.hashCount <= 6 {
		p.state = segment.Processing
		p.inMatch = false
		return p.includeMarker
	}

	p.Reset()
	return true
}
