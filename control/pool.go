package control

import "sync"

// ============================================================================
// Listener Snapshot Pooling
// ============================================================================
//
// Dispatch copies the listener list before iterating so that listeners can
// subscribe or unsubscribe from inside a callback. The copies are pooled to
// keep per-event dispatch allocation free.
//
// Usage:
//   snapshot := acquireSnapshot(len(list))
//   copy(snapshot, list)
//   ... dispatch ...
//   releaseSnapshot(snapshot)

var snapshotPool = sync.Pool{
	New: func() interface{} {
		s := make([]listenerEntry, 0, 8)
		return &s
	},
}

// acquireSnapshot returns a slice with len == n. Caller must call
// releaseSnapshot when done.
func acquireSnapshot(n int) []listenerEntry {
	sp := snapshotPool.Get().(*[]listenerEntry)
	s := *sp
	if cap(s) < n {
		snapshotPool.Put(sp)
		return make([]listenerEntry, n, n*2)
	}
	return s[:n]
}

// releaseSnapshot returns a slice to the pool. The slice must not be used
// afterwards.
func releaseSnapshot(s []listenerEntry) {
	if s == nil {
		return
	}
	// Drop listener references so the pool does not keep them alive.
	clear(s)
	if cap(s) <= 64 {
		s = s[:0]
		snapshotPool.Put(&s)
	}
}
