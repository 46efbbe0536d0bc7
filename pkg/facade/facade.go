// Package facade is the single entry point external callers use to
// drive segmentation sessions without touching pkg/engine directly.
// It owns the session handle table and is the only part of this
// module safe to share across goroutines: the handle map is guarded
// by a mutex, but an individual session reached through a handle is
// not safe for concurrent Push calls, matching pkg/engine.Session.
package facade

import (
	"sync"

	"streamseg/pkg/engine"
	"streamseg/pkg/segment"
	"streamseg/pkg/xmlsplit"
)

// SessionHandle identifies a live session. The zero value never
// refers to a live session.
type SessionHandle int64

var (
	mu       sync.RWMutex
	sessions = make(map[SessionHandle]*engine.Session)
	nextID   SessionHandle = 1
)

// CreateBlockSession starts a new block-level segmentation session
// and returns its handle.
func CreateBlockSession() SessionHandle {
	return register(engine.NewBlockSession())
}

// CreateInlineSession starts a new inline-level segmentation session
// and returns its handle.
func CreateInlineSession() SessionHandle {
	return register(engine.NewInlineSession())
}

func register(s *engine.Session) SessionHandle {
	mu.Lock()
	defer mu.Unlock()
	h := nextID
	nextID++
	sessions[h] = s
	return h
}

// DestroySession releases the session behind h. Destroying an unknown
// or already-destroyed handle is a no-op.
func DestroySession(h SessionHandle) {
	mu.Lock()
	defer mu.Unlock()
	delete(sessions, h)
}

func lookup(h SessionHandle) (*engine.Session, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := sessions[h]
	if !ok {
		return nil, ErrUnknownSession
	}
	return s, nil
}

// Push feeds chunk into the session behind h and returns the segments
// decided by this call. Pushing to an unknown handle or an empty
// chunk is a no-op that returns nil: per the segmentation API
// contract, Push never raises.
func Push(h SessionHandle, chunk []uint16) []segment.Segment {
	if len(chunk) == 0 {
		return nil
	}
	s, err := lookup(h)
	if err != nil {
		return nil
	}
	return s.Push(chunk)
}

// SplitByXML performs a stateless, one-shot XML/default split over
// the entire chunk. It holds no session and needs no handle.
func SplitByXML(chunk []uint16) []segment.Segment {
	if len(chunk) == 0 {
		return nil
	}
	return xmlsplit.Split(chunk)
}
