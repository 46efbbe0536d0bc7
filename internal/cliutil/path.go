// Package cliutil holds small helpers shared by cmd/streamseg's
// subcommands: path normalization and chunked UTF-16 conversion.
package cliutil

import "path"

// NormalizeSource turns a CLI-supplied input path into a stable,
// cross-platform source label used in log events and progress lines.
// It does not resolve the path against the filesystem or make it
// absolute; "-" (stdin) is passed through unchanged.
func NormalizeSource(p string) string {
	if p == "-" {
		return p
	}
	s := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		if p[i] == '\\' {
			s = append(s, '/')
		} else {
			s = append(s, p[i])
		}
	}
	return path.Clean(string(s))
}
