package italic

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

func TestItalicExcludeAsterisksBasic(t *testing.T) {
	p := New(false)
	got := drive(p, "*i*")
	want := []bool{false, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("char %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if p.State() != segment.Idle {
		t.Fatalf("state after closing '*' = %v, want Idle", p.State())
	}
}

func TestItalicSpaceAfterOpenRejects(t *testing.T) {
	p := New(true)
	p.ProcessChar('*', false)
	p.ProcessChar(' ', false)
	if p.State() != segment.Idle {
		t.Fatalf("space right after opening '*' must reject, got %v", p.State())
	}
}

// Two asterisks in a row is bold's territory, not italic's: italic
// must back off to Idle rather than treat the pair as its own start.
func TestItalicDoubleAsteriskDefersToBold(t *testing.T) {
	p := New(true)
	p.ProcessChar('*', false)
	if p.State() != segment.Trying {
		t.Fatalf("single '*' should be Trying, got %v", p.State())
	}
	p.ProcessChar('*', false)
	if p.State() != segment.Idle {
		t.Fatalf("a second consecutive '*' must defer to bold, got %v", p.State())
	}
}

func TestItalicNewlineWhileProcessingAborts(t *testing.T) {
	p := New(true)
	p.ProcessChar('*', false)
	p.ProcessChar('x', false)
	if p.State() != segment.Processing {
		t.Fatalf("content char after valid open should be Processing, got %v", p.State())
	}
	p.ProcessChar('\n', false)
	if p.State() != segment.Idle {
		t.Fatalf("newline mid-span must abort, got %v", p.State())
	}
}
