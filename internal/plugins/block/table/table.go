// Package table recognizes pipe-delimited tables: an SOL '|' opens the
// table; a subsequent '\n' moves to WAITFOR so the engine can check
// whether the next line also starts with '|'. A second-row separator
// of the form "|[-: |\t]+|" is tolerated but, matching the observed
// source, never actually consulted to reject a non-separator line.
package table

import "streamseg/pkg/segment"

type Plugin struct {
	includeDelimiters bool

	state                segment.State
	tableRowCount        int
	foundHeaderSeparator bool
	headerSepMatchState  int
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
	p.tableRowCount = 0
	p.foundHeaderSeparator = false
	p.headerSepMatchState = 0
}

func (p *Plugin) ProcessChar(c uint16, atStartOfLine bool) bool {
	if c == '\n' {
		if p.state == segment.Processing {
			p.state = segment.WaitFor
		}
		return true
	}

	if p.state == segment.WaitFor {
		if atStartOfLine {
			if c == '|' {
				p.state = segment.Processing
				p.tableRowCount++
				p.headerSepMatchState = 0
				return p.includeDelimiters
			}
			p.Reset()
			return true
		}
	}

	if atStartOfLine {
		if c == '|' {
			if p.state == segment.Idle {
				p.state = segment.Processing
				p.tableRowCount = 1
				p.foundHeaderSeparator = false
			} else if p.state == segment.Processing {
				p.tableRowCount++
			}
			p.headerSepMatchState = 0
			return p.includeDelimiters
		}
		if p.state == segment.Processing {
			p.Reset()
		}
		return true
	}

	if p.state == segment.Processing {
		if p.tableRowCount == 2 && !p.foundHeaderSeparator {
			// does not reject non-separator second rows (see
			// DESIGN.md Open Question decisions): the counter
			// advances but is never consulted.
			if p.headerSepMatchState == 0 {
				p.headerSepMatchState = 1
			}
		}

		if p.includeDelimiters {
			return true
		}
		return c != '|'
	}

	return true
}
