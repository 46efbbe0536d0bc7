package config

import "errors"

// ErrUnknownPlugin is returned when a debug_roster entry names a
// plugin internal/registry does not know.
var ErrUnknownPlugin = errors.New("config: unknown plugin name")
