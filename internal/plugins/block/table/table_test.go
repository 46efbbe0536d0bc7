package table

import (
	"testing"

	"streamseg/pkg/segment"
)

func solFlags(s string) []bool {
	out := make([]bool, len(s))
	atSOL := true
	for i := 0; i < len(s); i++ {
		out[i] = atSOL
		atSOL = s[i] == '\n'
	}
	return out
}

func drive(p *Plugin, s string) []bool {
	sol := solFlags(s)
	out := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = p.ProcessChar(uint16(s[i]), sol[i])
	}
	return out
}

func TestTableTwoRowsIncludeDelimiters(t *testing.T) {
	p := New(true)
	in := "|a|\n|b|\nx"
	got := drive(p, in)
	for i, c := range got {
		if !c {
			t.Fatalf("char %d (%q) should be kept with includeDelimiters=true, got false", i, in[i])
		}
	}
	if p.State() != segment.Idle {
		t.Fatalf("state after a non-pipe line following two rows = %v, want Idle", p.State())
	}
}

func TestTableExcludeDelimitersKeepsContentDropsPipes(t *testing.T) {
	p := New(false)
	in := "|a|\n|b|\nx"
	got := drive(p, in)
	want := []bool{false, true, false, true, false, true, false, true, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("char %d (%q): got %v, want %v", i, in[i], got[i], want[i])
		}
	}
}

func TestTableSingleRowWaitForRejectsNonPipeContinuation(t *testing.T) {
	p := New(true)
	p.ProcessChar('|', true)
	p.ProcessChar('a', false)
	p.ProcessChar('|', false)
	p.ProcessChar('\n', false)
	if p.State() != segment.WaitFor {
		t.Fatalf("newline after a pipe row should enter WaitFor, got %v", p.State())
	}
	p.ProcessChar('x', true)
	if p.State() != segment.Idle {
		t.Fatalf("a non-pipe next line must reject and reset, got %v", p.State())
	}
}

func TestTableMidLinePipeDoesNotOpen(t *testing.T) {
	p := New(true)
	p.ProcessChar('a', true)
	p.ProcessChar('|', false)
	if p.State() != segment.Idle {
		t.Fatalf("a pipe not at start of line must not open a table, got %v", p.State())
	}
}
