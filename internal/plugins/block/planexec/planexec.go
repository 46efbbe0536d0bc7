// Package planexec recognizes "<plan ...>...</plan>" blocks. The start
// tag is only honored at the start of a line, except immediately after
// a closing "</plan>" tag (and any following spaces/tabs), which allows
// chained plan blocks on one line.
package planexec

import "streamseg/pkg/segment"

type startState int

const (
	startIdle startState = iota
	startMatching
)

var litPlan = []uint16{'<', 'p', 'l', 'a', 'n'}
var litEndPlan = []uint16{'<', '/', 'p', 'l', 'a', 'n', '>'}

type Plugin struct {
	includeTags bool

	state                segment.State
	allowStartAfterEndTag bool
	startState            startState
	startMatchIndex       int
	endMatcher            segment.KMPMatcher
}

func New(includeTags bool) *Plugin {
	p := &Plugin{includeTags: includeTags}
	p.endMatcher.SetPattern(litEndPlan)
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
	p.startState = startIdle
	p.startMatchIndex = 0
	p.endMatcher.Reset()
}

func (p *Plugin) ProcessChar(c uint16, atStartOfLine bool) bool {
	if p.state == segment.Processing {
		if p.endMatcher.Process(c) {
			p.allowStartAfterEndTag = true
			p.Reset()
			return p.includeTags
		}
		return true
	}

	if p.state == segment.Idle && !atStartOfLine {
		if !p.allowStartAfterEndTag {
			return true
		}
		if c == ' ' || c == '\t' {
			return true
		}
	}

	if p.startState == startIdle {
		if c == '<' {
			p.startState = startMatching
			p.startMatchIndex = 1
			p.state = segment.Trying
			return p.includeTags
		}
		p.allowStartAfterEndTag = false
		return true
	}

	if p.startState == startMatching {
		if p.startMatchIndex < len(litPlan) {
			if c == litPlan[p.startMatchIndex] {
				p.startMatchIndex++
				p.state = segment.Trying
				return p.includeTags
			}
			p.Reset()
			p.allowStartAfterEndTag = false
			return true
		}

		if c == '>' {
			p.state = segment.Processing
			p.startState = startIdle
			p.startMatchIndex = 0
			p.allowStartAfterEndTag = false
			p.endMatcher.Reset()
			return p.includeTags
		}

		p.state = segment.Trying
		return p.includeTags
	}

	return true
}
