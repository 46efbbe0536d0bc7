package stress

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"streamseg/pkg/facade"
	"streamseg/pkg/segment"
)

// mergeRuns drops SEG_BREAK markers and merges adjacent non-break
// segments that share a tag and abut exactly, the way a caller
// reassembling output across many small pushes would. Invariant 3
// only promises the merged, non-break sequence is chunking-invariant,
// not that a run can never be split into two adjacent pieces at a
// push boundary.
func mergeRuns(segs []segment.Segment) []segment.Segment {
	out := make([]segment.Segment, 0, len(segs))
	for _, s := range segs {
		if s.Tag == segment.SegBreak {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Tag == s.Tag && out[n-1].End == s.Start {
			out[n-1].End = s.End
			continue
		}
		out = append(out, s)
	}
	return out
}

// fixture is large enough that even the smallest chunk size still
// crosses several construct boundaries (headers, fences, quotes,
// lists, a table) many times over.
func fixture(repeats int) string {
	one := "# Title\nplain **bold** and `code` and ~~gone~~ text.\n" +
		"> quoted line one\n> quoted line two\nnot quoted\n" +
		"- item one\n- item two\n1. ordered one\n2. ordered two\n" +
		"```go\nfunc main() {}\n```\n" +
		"| a | b |\n| c | d |\n" +
		"see <plan>do a thing</plan> and <br/> tail\n"
	out := make([]byte, 0, len(one)*repeats)
	for i := 0; i < repeats; i++ {
		out = append(out, one...)
	}
	return string(out)
}

func units(s string) []uint16 {
	out := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = uint16(s[i])
	}
	return out
}

// runOne drives a single session through the input in chunkSize-unit
// pieces and returns the merged non-break segment sequence.
func runOne(kind string, u []uint16, chunkSize int) []segment.Segment {
	var h facade.SessionHandle
	if kind == "inline" {
		h = facade.CreateInlineSession()
	} else {
		h = facade.CreateBlockSession()
	}
	defer facade.DestroySession(h)

	var all []segment.Segment
	for i := 0; i < len(u); i += chunkSize {
		end := i + chunkSize
		if end > len(u) {
			end = len(u)
		}
		all = append(all, facade.Push(h, u[i:end])...)
	}
	return mergeRuns(all)
}

// TestStressConcurrentSessions runs many independent block sessions
// in parallel at increasing concurrency levels, checking that the
// facade's session table keeps every handle's output correct under
// contention and recording latency percentiles the way a load test
// would.
func TestStressConcurrentSessions(t *testing.T) {
	input := units(fixture(50))
	baseline := runOne("block", input, 4096)
	if len(baseline) == 0 {
		t.Fatalf("baseline run produced no segments")
	}

	levels := []int{1, 8, 16, 32}
	for _, conc := range levels {
		t.Run(fmt.Sprintf("concurrency_%d", conc), func(t *testing.T) {
			const runsPerWorker = 3
			var wg sync.WaitGroup
			var mu sync.Mutex
			var latencies []time.Duration
			var mismatches []string

			for w := 0; w < conc; w++ {
				wg.Add(1)
				go func(worker int) {
					defer wg.Done()
					rng := rand.New(rand.NewSource(int64(worker) + 1))
					for r := 0; r < runsPerWorker; r++ {
						chunkSize := 16 + rng.Intn(512)
						start := time.Now()
						got := runOne("block", input, chunkSize)
						dur := time.Since(start)

						mu.Lock()
						latencies = append(latencies, dur)
						if diff := cmp.Diff(baseline, got); diff != "" {
							mismatches = append(mismatches, fmt.Sprintf("worker %d chunk %d: %s", worker, chunkSize, diff))
						}
						mu.Unlock()
					}
				}(w)
			}
			wg.Wait()

			if len(mismatches) > 0 {
				t.Fatalf("%d of %d runs at concurrency %d diverged from the single-shot baseline:\n%s", len(mismatches), conc*runsPerWorker, conc, mismatches[0])
			}

			sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
			var total time.Duration
			for _, d := range latencies {
				total += d
			}
			avg := total / time.Duration(len(latencies))
			idx := int(math.Ceil(float64(len(latencies))*0.95)) - 1
			if idx < 0 {
				idx = 0
			}
			t.Logf("concurrency %d avg %v p95 %v", conc, avg, latencies[idx])
		})
	}
}

// TestStressInterleavedBlockAndInlineSessions exercises the facade's
// handle table with both session kinds alive at once, which the
// pipeline-style stress test never needed since it only ever ran one
// component graph per call.
func TestStressInterleavedBlockAndInlineSessions(t *testing.T) {
	blockInput := units(fixture(20))
	inlineInput := units("plain **bold** and *italic* and `code` text, repeated. ")

	blockBaseline := runOne("block", blockInput, 2048)
	inlineBaseline := runOne("inline", inlineInput, 64)

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		kind := "block"
		input := blockInput
		want := blockBaseline
		chunk := 128 + i*7
		if i%2 == 1 {
			kind = "inline"
			input = inlineInput
			want = inlineBaseline
			chunk = 8 + i
		}
		go func(kind string, input []uint16, want []segment.Segment, chunk int) {
			defer wg.Done()
			got := runOne(kind, input, chunk)
			if diff := cmp.Diff(want, got); diff != "" {
				errs <- fmt.Sprintf("%s session at chunk size %d diverged (-want +got):\n%s", kind, chunk, diff)
			}
		}(kind, input, want, chunk)
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
