// Package fencedcode recognizes fenced code blocks: a run of three or
// more backticks opens the block (not required to be at start of
// line); PROCESSING begins after the first newline; a later line of
// optional leading spaces then three or more backticks closes it.
package fencedcode

import "streamseg/pkg/segment"

// Plugin implements segment.Plugin for ``` fenced code blocks.
type Plugin struct {
	includeFences bool

	state                segment.State
	fenceLen             int
	isMatchingEndFence    bool
	hasStartedMatchingEnd bool
}

// New constructs a fenced-code plugin. includeFences controls whether
// the opening/closing fence lines are kept in the emitted span.
func New(includeFences bool) *Plugin {
	p := &Plugin{includeFences: includeFences}
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
	p.fenceLen = 0
	p.isMatchingEndFence = false
	p.hasStartedMatchingEnd = false
}

func (p *Plugin) ProcessChar(c uint16, atStartOfLine bool) bool {
	if p.state == segment.Processing {
		if atStartOfLine {
			p.isMatchingEndFence = true
			p.hasStartedMatchingEnd = false
		}

		if p.isMatchingEndFence {
			if !p.hasStartedMatchingEnd {
				if c == ' ' {
					return p.includeFences
				}
				p.hasStartedMatchingEnd = true
			}

			if c == '`' {
				p.fenceLen++
				return p.includeFences
			}

			if c == '\n' {
				if p.fenceLen >= 3 {
					p.Reset()
					return p.includeFences
				}
				p.isMatchingEndFence = false
				p.fenceLen = 0
				return true
			}

			if p.fenceLen >= 3 {
				// text after the backtick run stays on the closing line
				return p.includeFences
			}

			p.isMatchingEndFence = false
			p.fenceLen = 0
			return true
		}

		return true
	}

	if p.state == segment.Idle {
		if c == '`' {
			p.state = segment.Trying
			p.fenceLen = 1
			return p.includeFences
		}
		return true
	}

	// Trying
	if c == '`' {
		p.fenceLen++
		return p.includeFences
	}

	if c == '\n' {
		if p.fenceLen >= 3 {
			p.state = segment.Processing
			p.isMatchingEndFence = false
			p.hasStartedMatchingEnd = false
			p.fenceLen = 0
			return p.includeFences
		}
		p.Reset()
		return true
	}

	if p.fenceLen < 3 {
		p.Reset()
		return true
	}

	// still in the opening line (info string)
	return p.includeFences
}
