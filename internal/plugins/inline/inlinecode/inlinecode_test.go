package inlinecode

import (
	"testing"

	"streamseg/pkg/segment"
)

func drive(p *Plugin, s string) []bool {
	out := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = p.ProcessChar(uint16(s[i]), false)
	}
	return out
}

func TestInlineCodeExcludeTicksBasic(t *testing.T) {
	p := New(false)
	got := drive(p, "`code`")
	want := []bool{false, true, true, true, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("char %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if p.State() != segment.Idle {
		t.Fatalf("state after closing backtick = %v, want Idle", p.State())
	}
}

// A second backtick right after the first widens the opening run
// instead of aborting, so "``" opens a two-tick span that a single
// backtick does not close and a pair of backticks does.
func TestInlineCodeDoubleOpeningBacktickWidensRun(t *testing.T) {
	p := New(true)
	p.ProcessChar('`', false)
	if p.State() != segment.Trying {
		t.Fatalf("single backtick should be Trying, got %v", p.State())
	}
	p.ProcessChar('`', false)
	if p.State() != segment.Trying {
		t.Fatalf("a second consecutive backtick should widen the opening run, got %v", p.State())
	}
	p.ProcessChar('x', false)
	p.ProcessChar('`', false)
	if p.State() != segment.Processing {
		t.Fatalf("one backtick must not close a two-tick span, got %v", p.State())
	}
	p.ProcessChar('`', false)
	if p.State() != segment.Idle {
		t.Fatalf("two backticks should close a two-tick span, got %v", p.State())
	}
}

func TestInlineCodeNewlineAbortsMidSpan(t *testing.T) {
	p := New(true)
	p.ProcessChar('`', false)
	p.ProcessChar('x', false)
	p.ProcessChar('\n', false)
	if p.State() != segment.Idle {
		t.Fatalf("newline mid-span must abort, got %v", p.State())
	}
}
