package blocklatexdollar

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

func TestBlockLatexDollarBasicMatch(t *testing.T) {
	p := New(true)
	got := drive(p, "$$x$$")
	for i, c := range got {
		if !c {
			t.Fatalf("char %d should be kept with includeDelimiters=true, got false", i)
		}
	}
	if p.State() != segment.Idle {
		t.Fatalf("state after closing $$ = %v, want Idle", p.State())
	}
}

func TestBlockLatexDollarExcludeDelimiters(t *testing.T) {
	p := New(false)
	got := drive(p, "$$x$$")
	want := []bool{false, false, true, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("char %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBlockLatexDollarSingleDollarNeverOpens(t *testing.T) {
	p := New(true)
	p.ProcessChar('$', false)
	if p.State() != segment.Trying {
		t.Fatalf("single '$' should be Trying, got %v", p.State())
	}
	p.ProcessChar('x', false)
	if p.State() != segment.Idle {
		t.Fatalf("non-'$' second char must reject the open, got %v", p.State())
	}
}

func TestBlockLatexDollarEndMatchFalseStartResets(t *testing.T) {
	p := New(true)
	p.ProcessChar('$', false)
	p.ProcessChar('$', false)
	p.ProcessChar('x', false)
	p.ProcessChar('$', false)
	if p.State() != segment.Processing {
		t.Fatalf("single trailing '$' should still be Processing awaiting the second, got %v", p.State())
	}
	// a non-'$' here should cancel the close attempt but stay Processing (body resumes).
	p.ProcessChar('y', false)
	if p.State() != segment.Processing {
		t.Fatalf("failed close attempt should resume Processing, got %v", p.State())
	}
}
