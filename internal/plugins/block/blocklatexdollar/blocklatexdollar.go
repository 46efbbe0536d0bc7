// Package blocklatexdollar recognizes block LaTeX delimited by "$$".
package blocklatexdollar

import "streamseg/pkg/segment"

type Plugin struct {
	includeDelimiters bool

	state      segment.State
	startState int
	endState   int
}

func New(includeDelimiters bool) *Plugin {
	p := &Plugin{includeDelimiters: includeDelimiters}
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
	p.startState = 0
	p.endState = 0
}

func (p *Plugin) ProcessChar(c uint16, _ bool) bool {
	if p.state == segment.Processing {
		if p.endState == 0 {
			if c == '$' {
				p.endState = 1
				return p.includeDelimiters
			}
			return true
		}
		if p.endState == 1 {
			if c == '$' {
				p.Reset()
				return p.includeDelimiters
			}
			p.endState = 0
			return true
		}
		p.endState = 0
		return true
	}

	if p.startState == 0 {
		if c == '$' {
			p.startState = 1
			p.state = segment.Trying
			return p.includeDelimiters
		}
		return true
	}
	if p.startState == 1 {
		if c == '$' {
			p.state = segment.Processing
			p.startState = 0
			p.endState = 0
			return p.includeDelimiters
		}
		p.Reset()
		return true
	}

	p.Reset()
	return true
}
