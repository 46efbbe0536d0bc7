// Package italic recognizes "*...*" spans, one asterisk at a time. A
// run of two asterisks in a row is deliberately not treated as italic
// (that's bold's territory), and a space right after the opening '*'
// disqualifies the start.
package italic

import "streamseg/pkg/segment"

type Plugin struct {
	includeAsterisks bool

	state      segment.State
	startMatch int
	lastChar   uint16
	hasLast    bool
}

func New(includeAsterisks bool) *Plugin {
	p := &Plugin{includeAsterisks: includeAsterisks}
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
	p.startMatch = 0
	p.hasLast = false
	p.lastChar = 0
}

func (p *Plugin) ProcessChar(c uint16, _ bool) bool {
	if p.hasLast && p.lastChar == '*' && c == '*' {
		p.hasLast = false
		p.Reset()
		return true
	}
	p.lastChar = c
	p.hasLast = true

	if p.state == segment.Processing {
		if c == '\n' {
			p.Reset()
			return true
		}
		if c == '*' {
			p.Reset()
			return p.includeAsterisks
		}
		return true
	}

	if c == '*' {
		p.state = segment.Trying
		p.startMatch = 1
		return p.includeAsterisks
	}

	if p.state == segment.Trying {
		if c != '*' && c != '\n' && c != ' ' {
			p.state = segment.Processing
			return true
		}
		p.Reset()
		return true
	}

	return true
}
