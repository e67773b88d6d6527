//go:build !deadlock

// Package syncutil provides the mutex type used for the lock's ancillary
// state (stats counters, test barriers). By default it is a plain
// sync.Mutex with zero overhead; build with -tags=deadlock to swap in
// github.com/sasha-s/go-deadlock and get deadlock detection on that state.
//
// The monitor mutex inside RWLock deliberately does not go through this
// package: it must report over-release as an error rather than fault.
package syncutil

import "sync"

// Mutex wraps sync.Mutex. Build with -tags=deadlock for deadlock detection.
type Mutex struct {
	sync.Mutex
}
