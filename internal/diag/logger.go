package diag

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewCorrID generates a fresh correlation ID for a run's logger.
func NewCorrID() string { return uuid.NewString() }

// Level is a logging verbosity threshold.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Logger is a minimal structured logger: one JSON object per line,
// written to a rotating file, filtered by level.
type Logger struct {
	corrID string
	level  Level
	sink   *RotatingFile
	mu     sync.Mutex
}

// NewLogger builds a Logger writing to the default "logs" directory
// with 10 MiB rotation.
func NewLogger(corrID, level string) *Logger {
	lvl := parseLevel(strings.TrimSpace(level))
	sink := NewRotatingFile("logs", 10*1024*1024)
	return &Logger{corrID: corrID, level: lvl, sink: sink}
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return Debug
	case "warn":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// Event is the standard structured log event shape.
type Event struct {
	Level   string            `json:"level"`
	TS      string            `json:"ts"`
	CorrID  string            `json:"corr_id"`
	Comp    string            `json:"comp"`
	Stage   string            `json:"stage"` // start|finish|error
	Code    string            `json:"code,omitempty"`
	DurMS   int64             `json:"dur_ms,omitempty"`
	Count   int64             `json:"count,omitempty"`
	Input   string            `json:"input,omitempty"`
	Session string            `json:"session,omitempty"`
	Msg     string            `json:"msg"`
	KV      map[string]string `json:"kv,omitempty"`
}

func (l *Logger) log(lv Level, ev Event) {
	if lv < l.level {
		return
	}
	ev.Level = lv.String()
	ev.TS = NowUTC()
	ev.CorrID = l.corrID
	b, _ := json.Marshal(ev)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sink == nil {
		_, _ = os.Stderr.Write(append(b, '\n'))
		return
	}
	if err := l.sink.WriteLine(b); err != nil {
		fmt.Fprintf(os.Stderr, "logger sink error: %v\n", err)
		_, _ = os.Stderr.Write(append(b, '\n'))
	}
}

// Start logs a start event and returns a Timer for the matching
// Finish.
func (l *Logger) Start(comp, msg string) *Timer {
	l.log(Info, Event{Comp: comp, Stage: "start", Msg: msg})
	return &Timer{l: l, comp: comp, t0: time.Now()}
}

// StartWith logs a start event carrying the input path and session
// kind ("block"/"inline") this call concerns.
func (l *Logger) StartWith(comp, msg, input, session string) *Timer {
	l.log(Info, Event{Comp: comp, Stage: "start", Input: input, Session: session, Msg: msg})
	return &Timer{l: l, comp: comp, input: input, session: session, t0: time.Now()}
}

// StartWithKV is StartWith plus free-form key/value fields.
func (l *Logger) StartWithKV(comp, msg, input, session string, kv map[string]string) *Timer {
	l.log(Info, Event{Comp: comp, Stage: "start", Input: input, Session: session, Msg: msg, KV: kv})
	return &Timer{l: l, comp: comp, input: input, session: session, t0: time.Now()}
}

// Error logs an error event. Error events are never filtered below
// CodeUnknown's threshold handling — callers still pass the level
// through the normal log() path, which only ever called at the Error
// level here.
func (l *Logger) Error(comp, code, msg string, durSince *time.Time) {
	var dur int64
	if durSince != nil {
		dur = time.Since(*durSince).Milliseconds()
	}
	l.log(Error, Event{Comp: comp, Stage: "error", Code: code, DurMS: dur, Msg: msg})
}

// ErrorWith is Error plus the input path and session kind.
func (l *Logger) ErrorWith(comp, code, msg string, durSince *time.Time, input, session string) {
	var dur int64
	if durSince != nil {
		dur = time.Since(*durSince).Milliseconds()
	}
	l.log(Error, Event{Comp: comp, Stage: "error", Code: code, DurMS: dur, Msg: msg, Input: input, Session: session})
}

// ErrorWithKV is ErrorWith plus free-form key/value fields.
func (l *Logger) ErrorWithKV(comp, code, msg string, durSince *time.Time, input, session string, kv map[string]string) {
	var dur int64
	if durSince != nil {
		dur = time.Since(*durSince).Milliseconds()
	}
	l.log(Error, Event{Comp: comp, Stage: "error", Code: code, DurMS: dur, Msg: msg, Input: input, Session: session, KV: kv})
}

// InfoFinish logs a finish event given an externally tracked start
// time (used when the call site didn't keep a Timer).
func (l *Logger) InfoFinish(comp, msg string, start time.Time, count int64) {
	l.log(Info, Event{Comp: comp, Stage: "finish", DurMS: time.Since(start).Milliseconds(), Count: count, Msg: msg})
}

// Timer tracks one start-to-finish span.
type Timer struct {
	l       *Logger
	comp    string
	input   string
	session string
	t0      time.Time
}

// Finish logs the matching finish event.
func (t *Timer) Finish(msg string, count int64) {
	if t == nil || t.l == nil {
		return
	}
	t.l.log(Info, Event{Comp: t.comp, Stage: "finish", DurMS: time.Since(t.t0).Milliseconds(), Count: count, Input: t.input, Session: t.session, Msg: msg})
}

// DebugStart logs a debug-level start event; a no-op unless the
// logger's level is Debug.
func (l *Logger) DebugStart(comp, msg, input, session string, kv map[string]string) {
	l.log(Debug, Event{Comp: comp, Stage: "start", Input: input, Session: session, Msg: msg, KV: kv})
}
