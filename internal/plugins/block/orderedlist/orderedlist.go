// Package orderedlist recognizes SOL-anchored "[0-9]+. " list markers.
package orderedlist

import "streamseg/pkg/segment"

func isDigit(c uint16) bool { return c >= '0' && c <= '9' }

type Plugin struct {
	includeMarker bool

	state      segment.State
	matchState int
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
	p.matchState = 0
}

func (p *Plugin) ProcessChar(c uint16, atStartOfLine bool) bool {
	if p.state == segment.Processing {
		if c == '\n' {
			p.Reset()
		}
		return true
	}

	if atStartOfLine {
		p.matchState = 0
		p.state = segment.Idle
	}

	if !atStartOfLine && p.state != segment.Trying {
		return true
	}

	switch p.matchState {
	case 0:
		if isDigit(c) {
			p.state = segment.Trying
			p.matchState = 1
			return p.includeMarker
		}
		p.Reset()
		return true
	case 1:
		if isDigit(c) {
			p.state = segment.Trying
			return p.includeMarker
		}
		if c == '.' {
			p.matchState = 2
			p.state = segment.Trying
			return p.includeMarker
		}
		p.Reset()
		return true
	case 2:
		if c == ' ' {
			p.state = segment.Processing
			p.matchState = 0
			return p.includeMarker
		}
		p.Reset()
		return true
	}

	p.Reset()
	return true
}
