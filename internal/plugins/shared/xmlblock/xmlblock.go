// Package xmlblock recognizes "<tagname ...>...</tagname>" regions.
// A start tag is honored mid-line only right after a closing tag or
// after one of a fixed set of trailing punctuation marks (optionally
// followed by spaces/tabs); self-closing tags such as "<br/>" are
// treated as plain text rather than opening a region. The closing
// pattern is built dynamically from the matched tag name and tracked
// with a streaming KMP matcher.
package xmlblock

import "streamseg/pkg/segment"

type startState int

const (
	waitLt startState = iota
	waitFirstLetter
	inTagName
	inAttrs
)

type Plugin struct {
	includeTags bool

	state      segment.State
	startState startState

	allowStartAfterEndTag      bool
	allowStartAfterPunctuation bool

	tagName        []uint16
	haveEndPattern bool
	endMatcher     segment.KMPMatcher
	lastChar       uint16
}

func New(includeTags bool) *Plugin {
	p := &Plugin{includeTags: includeTags}
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
	p.startState = waitLt
	p.tagName = p.tagName[:0]
	p.endMatcher.Reset()
	p.haveEndPattern = false
	p.lastChar = 0
}

func isAsciiLetter(c uint16) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isPunctuationTrigger(c uint16) bool {
	switch c {
	case 0xFF0C, 0x3002, 0xFF1F, 0xFF01, 0xFF1A, 0xFF08, 0xFF09,
		0x3010, 0x3011, 0x300A, 0x300B,
		':', ',', '.', '?', '!', '~', 0xFF5E, '>', 0xFF1E:
		return true
	default:
		return false
	}
}

func (p *Plugin) updatePunctuationAllowance(c uint16) {
	if isPunctuationTrigger(c) {
		p.allowStartAfterPunctuation = true
	} else if c == ' ' || c == '\t' {
		// keep
	} else {
		p.allowStartAfterPunctuation = false
	}
}

func (p *Plugin) handleDefaultCharacter(c uint16) bool {
	p.updatePunctuationAllowance(c)
	return true
}

func (p *Plugin) processStartMatcher(c uint16) bool {
	switch p.startState {
	case waitLt:
		if c == '<' {
			p.tagName = p.tagName[:0]
			p.startState = waitFirstLetter
			p.state = segment.Trying
		}
		return false
	case waitFirstLetter:
		if isAsciiLetter(c) {
			p.tagName = append(p.tagName, c)
			p.startState = inTagName
			p.state = segment.Trying
			return false
		}
		p.startState = waitLt
		p.state = segment.Idle
		return false
	case inTagName:
		if c == ' ' {
			p.startState = inAttrs
			p.state = segment.Trying
			return false
		}
		if c == '>' {
			p.startState = waitLt
			p.state = segment.Trying
			return true
		}
		p.tagName = append(p.tagName, c)
		p.state = segment.Trying
		return false
	case inAttrs:
		if c == '>' {
			p.startState = waitLt
			p.state = segment.Trying
			return true
		}
		p.state = segment.Trying
		return false
	}
	return false
}

func (p *Plugin) buildEndPattern() {
	pattern := make([]uint16, 0, len(p.tagName)+3)
	pattern = append(pattern, '<', '/')
	pattern = append(pattern, p.tagName...)
	pattern = append(pattern, '>')
	p.endMatcher.SetPattern(pattern)
	p.haveEndPattern = true
}

func (p *Plugin) ProcessChar(c uint16, atStartOfLine bool) bool {
	prevChar := p.lastChar
	finish := func(result bool) bool {
		p.lastChar = c
		return result
	}

	if p.state == segment.Processing {
		if p.haveEndPattern {
			if p.endMatcher.Process(c) {
				p.allowStartAfterEndTag = true
				p.allowStartAfterPunctuation = false
				p.Reset()
				return finish(p.includeTags)
			}
		}
		return finish(true)
	}

	if p.state == segment.Idle && !atStartOfLine {
		allowStart := p.allowStartAfterEndTag || p.allowStartAfterPunctuation
		if !allowStart {
			return finish(p.handleDefaultCharacter(c))
		}
		if c == ' ' || c == '\t' {
			return finish(p.handleDefaultCharacter(c))
		}
	}

	previousState := p.state
	startMatched := p.processStartMatcher(c)

	if startMatched {
		if prevChar == '/' {
			p.Reset()
			return finish(true)
		}
		p.state = segment.Processing
		p.allowStartAfterEndTag = false
		p.allowStartAfterPunctuation = false
		p.buildEndPattern()
		p.startState = waitLt
		return finish(p.includeTags)
	}

	if p.state == segment.Trying {
		p.allowStartAfterPunctuation = false
		return finish(p.includeTags)
	}

	if previousState == segment.Trying {
		p.Reset()
	}
	p.allowStartAfterEndTag = false
	p.allowStartAfterPunctuation = false
	return finish(p.handleDefaultCharacter(c))
}
