// Package link recognizes "[text](url)" spans. There are no
// delimiters to keep or drop independently: the whole span is always
// emitted as a link.
package link

import "streamseg/pkg/segment"

type Plugin struct {
	state segment.State
	phase int
}

func New() *Plugin {
	p := &Plugin{}
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
		if c == '[' {
			p.state = segment.Trying
			p.phase = 1
		}
		return true
	}

	if p.state == segment.Trying || p.state == segment.Processing {
		if c == '\n' {
			p.Reset()
			return true
		}
		switch p.phase {
		case 1:
			if c == ']' {
				p.phase = 2
				p.state = segment.Processing
			}
			return true
		case 2:
			if c == '(' {
				p.phase = 3
				return true
			}
			p.Reset()
			return true
		case 3:
			if c == ')' {
				p.Reset()
				return true
			}
			return true
		}
	}

	return true
}
