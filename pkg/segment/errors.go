package segment

import "errors"

// ErrUnknownPlugin is returned by internal/registry when a roster
// config names a plugin that is not registered. Never surfaced by the
// core engine itself, which never fails: only the debug roster
// assembly path can hit this.
var ErrUnknownPlugin = errors.New("segment: unknown plugin name")
