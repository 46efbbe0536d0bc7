package diag

import (
	"context"
	"errors"
	"os"
	"time"

	"streamseg/internal/config"
	"streamseg/pkg/facade"
	"streamseg/pkg/segment"
)

// Code is the minimal error classification used for logging/metrics
// only; it is independent of process exit codes.
type Code string

const (
	CodeUnknown   Code = "unknown"
	CodeInvariant Code = "invariant"
	CodeCancel    Code = "cancel"
	CodeIO        Code = "io"
)

// Classify buckets err using sentinel errors and standard library
// error types only, never string matching. The segmentation core
// itself never raises (see pkg/facade's doc comment); Classify only
// ever sees errors from this repo's outer layers: bad CLI flags or
// config values, or an unreadable config or input file.
func Classify(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return CodeCancel
	}
	if errors.Is(err, segment.ErrUnknownPlugin) ||
		errors.Is(err, config.ErrUnknownPlugin) ||
		errors.Is(err, facade.ErrUnknownSession) {
		return CodeInvariant
	}
	var perr *os.PathError
	if errors.As(err, &perr) {
		return CodeIO
	}
	return CodeUnknown
}

// NowUTC returns an RFC3339 UTC timestamp for the structured log "ts"
// field.
func NowUTC() string { return time.Now().UTC().Format(time.RFC3339) }
