// Package image recognizes "![alt](url)" images. Any '\n' aborts.
package image

import "streamseg/pkg/segment"

type Plugin struct {
	includeDelimiters bool

	state segment.State
	phase int
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
	p.phase = 0
}

func (p *Plugin) ProcessChar(c uint16, _ bool) bool {
	if p.state == segment.Idle {
		if c == '!' {
			p.state = segment.Trying
			p.phase = 1
			return p.includeDelimiters
		}
		return true
	}

	if p.state == segment.Trying || p.state == segment.Processing {
		if c == '\n' {
			p.Reset()
			return true
		}
		switch p.phase {
		case 1: // expect '['
			if c == '[' {
				p.phase = 2
				p.state = segment.Processing
				return p.includeDelimiters
			}
			p.Reset()
			return true
		case 2: // alt text until ']'
			if c == ']' {
				p.phase = 3
				return p.includeDelimiters
			}
			return p.includeDelimiters
		case 3: // expect '('
			if c == '(' {
				p.phase = 4
				return p.includeDelimiters
			}
			p.Reset()
			return true
		case 4: // url until ')'
			if c == ')' {
				p.Reset()
				return p.includeDelimiters
			}
			return p.includeDelimiters
		}
	}

	return true
}
