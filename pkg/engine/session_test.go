package engine

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"streamseg/pkg/segment"
)

func units(s string) []uint16 {
	out := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = uint16(s[i])
	}
	return out
}

func pushAll(s *Session, u []uint16) []segment.Segment {
	return s.Push(u)
}

func TestScenarioBoldBasic(t *testing.T) {
	s := NewInlineSession()
	got := pushAll(s, units("a**b**c"))
	want := []segment.Segment{
		{Tag: segment.PlainText, Start: 0, End: 1},
		{Tag: segment.SegBreak, Start: 2, End: 2},
		{Tag: segment.Bold, Start: 3, End: 4},
		{Tag: segment.SegBreak, Start: 5, End: 5},
		{Tag: segment.PlainText, Start: 6, End: 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bold basic mismatch (-want +got):\n%s", diff)
	}
}

// Header's Processing branch returns true unconditionally on its
// closing '\n' before resetting (internal/plugins/block/header), so
// the committed span runs through that newline rather than stopping
// just before it.
func TestScenarioChunkSplitHeader(t *testing.T) {
	whole := NewBlockSession()
	gotWhole := pushAll(whole, units("# H\nX"))

	split := NewBlockSession()
	var gotSplit []segment.Segment
	gotSplit = append(gotSplit, split.Push(units("# "))...)
	gotSplit = append(gotSplit, split.Push(units("H\nX"))...)

	wantNonBreak := []segment.Segment{
		{Tag: segment.Header, Start: 0, End: 4},
		{Tag: segment.PlainText, Start: 4, End: 5},
	}
	if diff := cmp.Diff(wantNonBreak, nonBreak(gotWhole)); diff != "" {
		t.Fatalf("unsplit mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantNonBreak, nonBreak(gotSplit)); diff != "" {
		t.Fatalf("split mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioFencedCodeCrossingChunks(t *testing.T) {
	input := "```py\nprint(1)\n```\n"
	whole := NewBlockSession()
	got := nonBreak(pushAll(whole, units(input)))
	if len(got) != 1 || got[0].Tag != segment.CodeBlock {
		t.Fatalf("expected a single CodeBlock span, got %v", got)
	}
	if got[0].Start != 0 || got[0].End != len(input) {
		t.Fatalf("fenced code span = %v, want full fence region [0,%d)", got[0], len(input))
	}

	for split := 1; split < len(input); split++ {
		s := NewBlockSession()
		var segs []segment.Segment
		u := units(input)
		segs = append(segs, s.Push(u[:split])...)
		segs = append(segs, s.Push(u[split:])...)
		if diff := cmp.Diff(got, nonBreak(segs)); diff != "" {
			t.Fatalf("split at %d mismatch (-want +got):\n%s", split, diff)
		}
	}
}

// Block quote is wired with includeMarker=false (pkg/engine/roster.go,
// matching the original production roster), so the opening "> " is
// dropped. The reopening '>' on the continuation line is kept
// regardless (see internal/plugins/block/blockquote), and the final
// held newline reverts to plain text once 'c' proves there is no
// third quoted line, separated from the following 'c' by a break
// since the two PlainText runs come from different construct
// instances.
func TestScenarioBlockQuoteContinuation(t *testing.T) {
	s := NewBlockSession()
	got := pushAll(s, units("> a\n> b\nc"))
	want := []segment.Segment{
		{Tag: segment.BlockQuote, Start: 2, End: 7},
		{Tag: segment.PlainText, Start: 7, End: 8},
		{Tag: segment.SegBreak, Start: 8, End: 8},
		{Tag: segment.PlainText, Start: 8, End: 9},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("blockquote continuation mismatch (-want +got):\n%s", diff)
	}
}

// Horizontal rule is wired with includeMarker=true, and its closing
// '\n' is consumed directly by its own processChar (no WaitFor), so
// the committed span runs through that newline. Unordered list is
// wired with includeMarker=false, so its "- " marker is dropped and
// the committed span is just the list item's content.
func TestScenarioHorizontalRuleVsList(t *testing.T) {
	s := NewBlockSession()
	got := nonBreak(pushAll(s, units("---\n- a")))
	want := []segment.Segment{
		{Tag: segment.HorizontalRule, Start: 0, End: 4},
		{Tag: segment.UnorderedList, Start: 6, End: 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("hrule vs list mismatch (-want +got):\n%s", diff)
	}
}

func nonBreak(segs []segment.Segment) []segment.Segment {
	out := make([]segment.Segment, 0, len(segs))
	for _, s := range segs {
		if s.Tag != segment.SegBreak {
			out = append(out, s)
		}
	}
	return out
}

// TestPropertyCoverageAndDisjointness checks invariant 1: non-break
// ranges never overlap and stay inside [0, total).
func TestPropertyCoverageAndDisjointness(t *testing.T) {
	inputs := []string{
		"# Title\nplain **bold** and `code`\n> quoted\n- item\n1. ordered\n",
		"no markup here at all, just plain sentences.",
		"<plan>do a thing</plan> then <br/> rest",
	}
	for _, in := range inputs {
		s := NewBlockSession()
		segs := nonBreak(s.Push(units(in)))
		prevEnd := 0
		for _, seg := range segs {
			if seg.Start < prevEnd {
				t.Fatalf("overlap detected in %q at %v (prevEnd=%d)", in, seg, prevEnd)
			}
			if seg.Start < 0 || seg.End > len(in) {
				t.Fatalf("segment %v out of bounds for input length %d", seg, len(in))
			}
			prevEnd = seg.End
		}
	}
}

// TestPropertyMonotonicity checks invariant 2 across a single Push's
// output.
func TestPropertyMonotonicity(t *testing.T) {
	s := NewBlockSession()
	segs := s.Push(units("# H\n**b**\n> q\n"))
	prevStart, prevEnd := -1, -1
	for _, seg := range segs {
		if seg.Start < prevStart {
			t.Fatalf("start not monotonic: %v after prevStart=%d", seg, prevStart)
		}
		if seg.End < prevEnd {
			t.Fatalf("end not monotonic: %v after prevEnd=%d", seg, prevEnd)
		}
		prevStart, prevEnd = seg.Start, seg.End
	}
}

// TestPropertyChunkBoundaryInvariance checks invariant 3 via random
// re-chunking of a fixed set of fixtures, comparing only the non-break
// segment sequence.
func TestPropertyChunkBoundaryInvariance(t *testing.T) {
	fixtures := []string{
		"# Header\nSome *italic* and **bold** text.\n> a\n> b\nc\n- x\n- y\n1. z\n",
		"```go\nfunc main() {}\n```\nplain [link](http://x) done",
		"see <br/> and <plan>x</plan> tail",
	}
	rng := rand.New(rand.NewSource(1))
	for _, fixture := range fixtures {
		u := units(fixture)
		baseline := nonBreak(NewBlockSession().Push(u))

		for trial := 0; trial < 20; trial++ {
			s := NewBlockSession()
			var got []segment.Segment
			i := 0
			for i < len(u) {
				step := 1 + rng.Intn(5)
				end := i + step
				if end > len(u) {
					end = len(u)
				}
				got = append(got, s.Push(u[i:end])...)
				i = end
			}
			if diff := cmp.Diff(baseline, nonBreak(got)); diff != "" {
				t.Fatalf("chunk-boundary invariance failed for %q trial %d (-want +got):\n%s", fixture, trial, diff)
			}
		}
	}
}

// TestPropertyNoCrashTotality checks invariant 7 over an assortment of
// adversarial inputs including empty and malformed constructs.
func TestPropertyNoCrashTotality(t *testing.T) {
	inputs := []string{
		"",
		"**unterminated bold",
		"`unterminated code",
		"<plan>no close",
		"> quote\n>>>> more",
		"$$ unterminated block latex",
		"\x00\x01 weird bytes",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("panic on input %q: %v", in, r)
				}
			}()
			s := NewBlockSession()
			_ = s.Push(units(in))
		}()
	}
}

// TestPropertyKeepDropFaithfulness checks invariant 5: an
// include_delimiters=false construct excludes its delimiters.
func TestPropertyKeepDropFaithfulness(t *testing.T) {
	s := NewInlineSession()
	got := nonBreak(s.Push(units("x~~y~~z")))
	want := []segment.Segment{
		{Tag: segment.PlainText, Start: 0, End: 1},
		{Tag: segment.Strikethrough, Start: 3, End: 4},
		{Tag: segment.PlainText, Start: 6, End: 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("strikethrough delimiter-drop mismatch (-want +got):\n%s", diff)
	}
}
