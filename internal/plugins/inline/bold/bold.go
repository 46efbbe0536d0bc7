// Package bold recognizes "**...**" spans. A third consecutive '*' or
// an immediate newline after "**" aborts the start match.
package bold

import "streamseg/pkg/segment"

type Plugin struct {
	includeAsterisks bool

	state      segment.State
	startMatch int
	endMatch   int
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
	p.endMatch = 0
}

func (p *Plugin) ProcessChar(c uint16, _ bool) bool {
	if p.state == segment.Processing {
		if c == '*' {
			p.endMatch++
			if p.endMatch == 2 {
				p.Reset()
				return p.includeAsterisks
			}
			return p.includeAsterisks
		}
		p.endMatch = 0
		return true
	}

	if p.state == segment.Idle {
		if c == '*' {
			p.state = segment.Trying
			p.startMatch = 1
			return p.includeAsterisks
		}
		return true
	}

	if p.state == segment.Trying {
		if p.startMatch == 1 {
			if c == '*' {
				p.startMatch = 2
				return p.includeAsterisks
			}
			p.Reset()
			return true
		}
		if p.startMatch == 2 {
			if c != '*' && c != '\n' {
				p.state = segment.Processing
				p.endMatch = 0
				p.startMatch = 0
				return true
			}
			p.Reset()
			return true
		}
		p.Reset()
		return true
	}

	return true
}
