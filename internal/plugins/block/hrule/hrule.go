// Package hrule recognizes SOL-anchored horizontal rules: a run of
// three or more copies of one marker from {-, *, _}, allowing
// interspersed spaces and tabs, terminated by '\n'.
package hrule

import "streamseg/pkg/segment"

type Plugin struct {
	includeMarker bool

	state         segment.State
	currentMarker uint16
	hasMarker     bool
	markerCount   int
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
	p.currentMarker = 0
	p.hasMarker = false
	p.markerCount = 0
}

func (p *Plugin) ProcessChar(c uint16, atStartOfLine bool) bool {
	if c == '\n' {
		isMatch := (p.state == segment.Trying || p.state == segment.Processing) && p.markerCount >= 3
		shouldEmit := isMatch && p.includeMarker
		p.Reset()
		if isMatch {
			return shouldEmit
		}
		return true
	}

	if p.state == segment.Idle {
		if atStartOfLine {
			if c == '-' || c == '*' || c == '_' {
				p.state = segment.Trying
				p.currentMarker = c
				p.hasMarker = true
				p.markerCount = 1
				return p.includeMarker
			}
		}
		return true
	}

	if p.hasMarker && (c == p.currentMarker || c == ' ' || c == '\t') {
		if c == p.currentMarker {
			p.markerCount++
		}
		if p.markerCount >= 3 {
			p.state = segment.Processing
		}
		return p.includeMarker
	}

	p.Reset()
	return true
}
