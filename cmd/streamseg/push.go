package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"streamseg/internal/cliutil"
	cfgpkg "streamseg/internal/config"
	"streamseg/pkg/engine"
	"streamseg/pkg/facade"
	"streamseg/pkg/segment"
	"streamseg/pkg/wire"
)

// pusher is the minimal surface push needs from either a facade
// handle (the two fixed production rosters) or a raw custom
// *engine.Session (the debug roster override, which never goes
// through the facade's handle table).
type pusher interface {
	Push(chunk []uint16) []segment.Segment
}

type handlePusher struct{ h facade.SessionHandle }

func (p handlePusher) Push(chunk []uint16) []segment.Segment { return facade.Push(p.h, chunk) }

func newPushCmd(state *appState) *cobra.Command {
	var (
		flagSession   string
		flagChunkSize int
		flagFormat    string
		flagStats     bool
		flagNested    bool
	)

	cmd := &cobra.Command{
		Use:   "push [input]",
		Short: "Stream an input through a block or inline segmentation session",
		Long: "push reads an input file (or stdin, with \"-\" or no argument),\n" +
			"feeds it through a streamseg session in fixed-size chunks, and\n" +
			"prints every segment the chunks resolved once the last one is pushed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := state.cfg
			if cmd.Flags().Changed("session") {
				cfg.Session = flagSession
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = flagFormat
			}
			if cmd.Flags().Changed("stats") {
				cfg.Stats = flagStats
			}
			if err := cfgpkg.Validate(cfg); err != nil {
				return err
			}

			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			label := cliutil.NormalizeSource(source)

			data, err := readSource(cmd.InOrStdin(), source)
			if err != nil {
				return err
			}

			built, err := cfgpkg.AssembleRoster(cfg)
			if err != nil {
				return err
			}

			var p pusher
			var destroy func()
			switch {
			case len(built) > 0:
				roster := make([]engine.RosterEntry, len(built))
				for i, b := range built {
					roster[i] = engine.RosterEntry{Plugin: b.Plugin, Tag: b.Tag}
				}
				p = engine.NewCustomSession(roster)
				destroy = func() {}
			case cfg.Session == "inline":
				h := facade.CreateInlineSession()
				p = handlePusher{h}
				destroy = func() { facade.DestroySession(h) }
			default:
				h := facade.CreateBlockSession()
				p = handlePusher{h}
				destroy = func() { facade.DestroySession(h) }
			}
			defer destroy()

			if state.term != nil {
				state.term.RunStart(cfg.Session)
				state.term.InputStart(label)
			}

			units := cliutil.ToUTF16(string(data))
			chunks := cliutil.Chunks(units, flagChunkSize)

			runStart := time.Now()
			timer := state.logger.StartWith("push", "stream start", label, cfg.Session)

			var all []segment.Segment
			segCount, errCount, pushes := 0, 0, 0
			for _, chunk := range chunks {
				segs := p.Push(chunk)
				pushes++
				segCount += len(segs)
				all = append(all, segs...)
				if state.term != nil {
					state.term.PushProgress(pushes, segCount, errCount)
				}
			}
			elapsed := time.Since(runStart)

			timer.Finish("stream done", int64(segCount))
			if state.term != nil {
				state.term.InputFinish(true, elapsed)
				state.term.RunFinish(true, elapsed)
			}

			if flagNested && cfg.Session == "block" {
				nestInline(units, all)
			}

			return renderSegments(cmd.OutOrStdout(), units, all, cfg.Format, cfg.Stats)
		},
	}

	cmd.Flags().StringVar(&flagSession, "session", "", "session kind: block|inline (overrides config)")
	cmd.Flags().IntVar(&flagChunkSize, "chunk-size", 4096, "code units pushed per Push call")
	cmd.Flags().StringVar(&flagFormat, "format", "", "output format: wire|json|pretty (overrides config)")
	cmd.Flags().BoolVar(&flagStats, "stats", false, "report a word-count side channel per PLAIN_TEXT run")
	cmd.Flags().BoolVar(&flagNested, "nested", false, "re-feed each block segment's text into an inline session (printed, not merged into the output)")

	return cmd
}

func readSource(in io.Reader, source string) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(in)
	}
	return os.ReadFile(source)
}

// nestInline demonstrates caller-side decomposition: the engine never
// nests constructs itself, so a caller wanting inline spans inside a
// block span re-feeds that span's text through its own inline
// session.
func nestInline(units []uint16, segs []segment.Segment) {
	h := facade.CreateInlineSession()
	defer facade.DestroySession(h)
	for _, s := range segs {
		if s.Tag == segment.SegBreak || s.Start >= s.End {
			continue
		}
		nested := facade.Push(h, units[s.Start:s.End])
		if len(nested) > 0 {
			fmt.Fprintf(os.Stderr, "[nested %s %d:%d] %d inline segments\n", tagName(s.Tag), s.Start, s.End, len(nested))
		}
	}
}

func renderSegments(w io.Writer, units []uint16, segs []segment.Segment, format string, stats bool) error {
	switch format {
	case "wire":
		flat := wire.Flatten(segs)
		enc := json.NewEncoder(w)
		return enc.Encode(flat)
	case "pretty":
		return renderPretty(w, units, segs, stats)
	default:
		type outSeg struct {
			Tag       segment.Tag `json:"tag"`
			Start     int         `json:"start"`
			End       int         `json:"end"`
			WordCount int         `json:"word_count,omitempty"`
		}
		out := make([]outSeg, 0, len(segs))
		for _, s := range segs {
			o := outSeg{Tag: s.Tag, Start: s.Start, End: s.End}
			if stats && s.Tag == segment.PlainText {
				o.WordCount = cliutil.WordCount(string(utf16.Decode(units[s.Start:s.End])))
			}
			out = append(out, o)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
}

func renderPretty(w io.Writer, units []uint16, segs []segment.Segment, stats bool) error {
	for _, s := range segs {
		if s.Tag == segment.SegBreak {
			fmt.Fprintln(w, "--")
			continue
		}
		text := string(utf16.Decode(units[s.Start:s.End]))
		wrapped := wordwrap.String(text, 72)
		header := fmt.Sprintf("[%s %d:%d]", tagName(s.Tag), s.Start, s.End)
		if stats && s.Tag == segment.PlainText {
			header += fmt.Sprintf(" words=%d", cliutil.WordCount(text))
		}
		fmt.Fprintln(w, header)
		fmt.Fprintln(w, strings.TrimRight(wrapped, "\n"))
	}
	return nil
}

func tagName(t segment.Tag) string {
	switch t {
	case segment.Header:
		return "header"
	case segment.BlockQuote:
		return "blockquote"
	case segment.CodeBlock:
		return "codeblock"
	case segment.OrderedList:
		return "orderedlist"
	case segment.UnorderedList:
		return "unorderedlist"
	case segment.HorizontalRule:
		return "hrule"
	case segment.BlockLatex:
		return "blocklatex"
	case segment.Table:
		return "table"
	case segment.XMLBlock:
		return "xmlblock"
	case segment.PlanExecution:
		return "planexec"
	case segment.Bold:
		return "bold"
	case segment.Italic:
		return "italic"
	case segment.InlineCode:
		return "inlinecode"
	case segment.Link:
		return "link"
	case segment.Image:
		return "image"
	case segment.Strikethrough:
		return "strikethrough"
	case segment.Underline:
		return "underline"
	case segment.InlineLatex:
		return "inlinelatex"
	case segment.PlainText:
		return "plaintext"
	default:
		return "unknown"
	}
}
