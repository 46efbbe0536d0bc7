// Package inlinecode recognizes "`...`" spans. An opening run of N
// backticks is closed by the next N consecutive backticks inside the
// span; a newline anywhere aborts.
package inlinecode

import "streamseg/pkg/segment"

type Plugin struct {
	includeTicks bool

	state    segment.State
	tickLen  int
	endMatch int
}

func New(includeTicks bool) *Plugin {
	p := &Plugin{includeTicks: includeTicks}
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
	p.tickLen = 0
	p.endMatch = 0
}

func (p *Plugin) ProcessChar(c uint16, _ bool) bool {
	if p.state == segment.Processing && c == '\n' {
		p.Reset()
		return true
	}

	if p.state == segment.Processing {
		if c == '`' {
			p.endMatch++
			if p.endMatch == p.tickLen {
				p.Reset()
				return p.includeTicks
			}
			return p.includeTicks
		}
		p.endMatch = 0
		return true
	}

	if c == '`' {
		if p.state == segment.Idle {
			p.state = segment.Trying
			p.tickLen = 1
			return p.includeTicks
		}
		if p.state == segment.Trying {
			p.tickLen++
			return p.includeTicks
		}
	}

	if p.state == segment.Trying {
		if c != '`' && c != '\n' {
			p.state = segment.Processing
			p.endMatch = 0
			return true
		}
		if c == '\n' {
			p.Reset()
			return true
		}
	}

	return true
}
