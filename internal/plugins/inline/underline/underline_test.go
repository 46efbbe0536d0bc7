package underline

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

func TestUnderlineIncludeDelimitersBasic(t *testing.T) {
	p := New(true)
	got := drive(p, "__u__")
	for i, c := range got {
		if !c {
			t.Fatalf("char %d should be kept with includeDelimiters=true, got false", i)
		}
	}
	if p.State() != segment.Idle {
		t.Fatalf("state after closing '__' = %v, want Idle", p.State())
	}
}

func TestUnderlineExcludeDelimiters(t *testing.T) {
	p := New(false)
	got := drive(p, "__u__")
	want := []bool{false, false, true, false, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("char %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnderlineSingleUnderscoreNeverOpens(t *testing.T) {
	p := New(true)
	p.ProcessChar('_', false)
	if p.State() != segment.Trying {
		t.Fatalf("single '_' should be Trying, got %v", p.State())
	}
	p.ProcessChar('x', false)
	if p.State() != segment.Idle {
		t.Fatalf("non-'_' second char must reject the open, got %v", p.State())
	}
}
