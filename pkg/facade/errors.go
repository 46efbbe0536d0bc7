package facade

import "errors"

// ErrUnknownSession is returned when a SessionHandle does not refer to
// a live session, whether because it was never created or was already
// destroyed.
var ErrUnknownSession = errors.New("facade: unknown session handle")
