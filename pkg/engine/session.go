// Package engine implements the incremental multi-plugin segmentation
// session: a fixed roster of plugins runs speculatively in parallel
// from Idle on every character until one plugin commits to
// Processing, at which point it becomes the session's active plugin
// and the rest are reset. Grammar precedence between simultaneously
// committing plugins is the roster's index order: the lowest index
// wins.
package engine

import "streamseg/pkg/segment"

// entry pairs a plugin instance with the tag its matches are emitted
// under. Two entries may share a tag (the two LaTeX delimiter
// variants both emit segment.BlockLatex, for instance).
type entry struct {
	plugin segment.Plugin
	tag    segment.Tag
}

type waitforPending struct {
	globalIndex int
	shouldEmit  bool
}

type pendingChar struct {
	c           uint16
	globalIndex int
}

// Session holds one streaming segmentation run over a fixed plugin
// roster. A Session is not safe for concurrent use; callers needing
// concurrent sessions must serialize access to each one individually.
type Session struct {
	plugins []entry

	globalOffset  int
	atStartOfLine bool

	activePlugin segment.Plugin
	activeTag    segment.Tag

	evalStartGlobal int
	evalBuffer      []uint16
	evalEmitMask    []uint32

	waitforActive        bool
	waitforAtStartOfLine bool
	waitforPending       []waitforPending

	pendingChars []pendingChar
}

func newSession(plugins []entry) *Session {
	s := &Session{
		plugins:         plugins,
		atStartOfLine:   true,
		activeTag:       segment.PlainText,
		evalStartGlobal: -1,
	}
	for _, e := range s.plugins {
		e.plugin.InitPlugin()
	}
	return s
}

// run-length coalescing state threaded through a single Push call.
type runState struct {
	out     []segment.Segment
	tag     segment.Tag
	start   int
	end     int
	started bool
}

func (r *runState) emitIndex(tag segment.Tag, index int) {
	if r.started && (r.tag != tag || r.end != index) {
		r.out = append(r.out, segment.Segment{Tag: r.tag, Start: r.start, End: r.end})
		r.started = false
	}
	if !r.started {
		r.tag = tag
		r.start = index
		r.end = index + 1
		r.started = true
	} else {
		r.end = index + 1
	}
}

func (r *runState) flush() {
	if r.started {
		r.out = append(r.out, segment.Segment{Tag: r.tag, Start: r.start, End: r.end})
		r.started = false
	}
}

func (r *runState) emitBreak(pos int) {
	r.flush()
	r.out = append(r.out, segment.Segment{Tag: segment.SegBreak, Start: pos, End: pos})
}

// Push feeds the next chunk of UTF-16 code units into the session and
// returns the segments fully decided by this call. Decisions that
// depend on lookahead not yet supplied (WaitFor) are carried to the
// next Push.
func (s *Session) Push(chunk []uint16) []segment.Segment {
	r := &runState{}

	processOne := func(c uint16, atStartOfLine bool, forcedGlobalIndex int) {
		globalIndex := forcedGlobalIndex
		if forcedGlobalIndex < 0 {
			globalIndex = s.globalOffset
			s.globalOffset++
		}

		if s.waitforActive {
			nextShouldEmit := s.activePlugin.ProcessChar(c, s.waitforAtStartOfLine)

			if s.activePlugin.State() == segment.Processing {
				for _, pending := range s.waitforPending {
					if pending.shouldEmit {
						r.emitIndex(s.activeTag, pending.globalIndex)
					}
				}
				s.waitforPending = s.waitforPending[:0]
				s.waitforActive = false
				if nextShouldEmit {
					r.emitIndex(s.activeTag, globalIndex)
				}
				return
			}

			for _, pending := range s.waitforPending {
				if pending.shouldEmit {
					r.emitIndex(segment.PlainText, pending.globalIndex)
				}
			}
			s.waitforPending = s.waitforPending[:0]
			s.waitforActive = false

			r.emitBreak(globalIndex)
			s.activePlugin = nil
			s.activeTag = segment.PlainText

			for _, e := range s.plugins {
				e.plugin.Reset()
			}

			s.pendingChars = append([]pendingChar{{c: c, globalIndex: globalIndex}}, s.pendingChars...)
			return
		}

		if s.activePlugin != nil {
			shouldEmit := s.activePlugin.ProcessChar(c, atStartOfLine)
			if s.activePlugin.State() == segment.WaitFor {
				s.waitforActive = true
				s.waitforAtStartOfLine = c == '\n'
				s.waitforPending = append(s.waitforPending, waitforPending{globalIndex: globalIndex, shouldEmit: shouldEmit})
				return
			}
			if shouldEmit {
				r.emitIndex(s.activeTag, globalIndex)
			}
			if s.activePlugin.State() != segment.Processing {
				r.emitBreak(globalIndex + 1)
				s.activePlugin = nil
				s.activeTag = segment.PlainText
			}
			return
		}

		// Evaluation mode: every roster plugin runs speculatively.
		if s.evalStartGlobal < 0 {
			s.evalStartGlobal = globalIndex
		}
		s.evalBuffer = append(s.evalBuffer, c)

		var emitMask uint32
		for pi, e := range s.plugins {
			if e.plugin.ProcessChar(c, atStartOfLine) {
				emitMask |= 1 << uint(pi)
			}
		}
		s.evalEmitMask = append(s.evalEmitMask, emitMask)

		successful := -1
		for pi, e := range s.plugins {
			if e.plugin.State() == segment.Processing {
				successful = pi
				break
			}
		}

		if successful != -1 {
			s.activePlugin = s.plugins[successful].plugin
			s.activeTag = s.plugins[successful].tag

			r.flush()

			for bi, mask := range s.evalEmitMask {
				if mask&(1<<uint(successful)) != 0 {
					r.emitIndex(s.activeTag, s.evalStartGlobal+bi)
				}
			}

			s.evalBuffer = s.evalBuffer[:0]
			s.evalEmitMask = s.evalEmitMask[:0]
			s.evalStartGlobal = -1

			for pi, e := range s.plugins {
				if pi != successful {
					e.plugin.Reset()
				}
			}
			return
		}

		anyTrying := false
		for _, e := range s.plugins {
			if e.plugin.State() == segment.Trying {
				anyTrying = true
				break
			}
		}

		if !anyTrying {
			for bi := range s.evalBuffer {
				r.emitIndex(segment.PlainText, s.evalStartGlobal+bi)
			}
			s.evalBuffer = s.evalBuffer[:0]
			s.evalEmitMask = s.evalEmitMask[:0]
			s.evalStartGlobal = -1
			for _, e := range s.plugins {
				e.plugin.Reset()
			}
		}
	}

	atStartOfLine := s.atStartOfLine
	i := 0
	for i < len(chunk) || len(s.pendingChars) > 0 {
		var c uint16
		forcedIndex := -1

		if len(s.pendingChars) > 0 {
			pc := s.pendingChars[0]
			s.pendingChars = s.pendingChars[1:]
			c = pc.c
			forcedIndex = pc.globalIndex
		} else {
			c = chunk[i]
			i++
		}

		sol := atStartOfLine
		atStartOfLine = c == '\n'
		processOne(c, sol, forcedIndex)
	}
	s.atStartOfLine = atStartOfLine

	r.flush()
	return r.out
}
