// Copyright 2026 The go-rwlock Contributors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rwlock provides a monitor-backed reader-writer lock: any number of
// goroutines may hold a shared read stake concurrently, while a write stake
// is mutually exclusive with every other read or write stake.
//
// The lock is reader-preferring. AcquireRead never waits behind a pending
// writer, so a continuous stream of overlapping readers can delay a waiting
// writer indefinitely. It is not fair (no FIFO ordering among waiters), not
// reentrant for writers, and does not support upgrading a read stake to a
// write stake; both of the latter block forever if attempted from a single
// goroutine.
package rwlock

import (
	"sync"
	"sync/atomic"
)

// RWLock is a reader-writer lock built on a single monitor: a condition
// variable over a non-reentrant mutex plus a count of live read stakes.
// The monitor mutex's locked state doubles as the write stake - a writer
// holds the mutex for the full duration between AcquireWrite and
// ReleaseWrite.
//
// Use New to construct an RWLock. An RWLock must not be copied after first
// use, and must not be deallocated while any goroutine holds or waits on it.
type RWLock struct {
	cond    *sync.Cond
	mu      *condMutex
	readers atomic.Int64
	stats   lockStats
}

// New creates an unlocked RWLock with zero readers.
func New() *RWLock {
	mu := newCondMutex()
	return &RWLock{
		cond: sync.NewCond(mu),
		mu:   mu,
	}
}

// AcquireRead takes a shared read stake. It briefly holds the monitor mutex
// to increment the reader count and returns immediately; it never waits on
// the condition variable, regardless of how many writers are parked there.
// It does block for the duration of an active write stake, since the writer
// holds the monitor mutex.
func (l *RWLock) AcquireRead() {
	l.mu.Lock()
	l.readers.Add(1)
	l.stats.noteReadAcquire()
	l.mu.Unlock()
}

// ReleaseRead drops a shared read stake. When the reader count reaches zero
// it wakes every goroutine parked in AcquireWrite.
//
// There is no check that a matching AcquireRead happened first: an unpaired
// call drives the reader count negative and stays that way. Callers are
// responsible for pairing; WithRead and ReadScope do this for you.
func (l *RWLock) ReleaseRead() {
	l.mu.Lock()
	if l.readers.Add(-1) == 0 {
		l.cond.Broadcast()
	}
	l.stats.noteReadRelease()
	l.mu.Unlock()
}

// AcquireWrite takes the exclusive write stake. It blocks until the reader
// count is zero and returns holding the monitor mutex; the held mutex is the
// write stake. While it is held no AcquireRead, ReleaseRead, or other
// AcquireWrite can get past its own mutex acquisition.
//
// The monitor mutex is not reentrant. Calling AcquireWrite twice from one
// goroutine without an intervening ReleaseWrite deadlocks, as does calling
// it while the same goroutine holds a read stake.
func (l *RWLock) AcquireWrite() {
	l.mu.Lock()
	waited := false
	for l.readers.Load() > 0 {
		if !waited {
			waited = true
			l.stats.noteWriteContended()
			Debugf("writer waiting for %d reader(s)", l.readers.Load())
		}
		l.cond.Wait()
	}
	if waited {
		Debugf("writer acquired after readers drained")
	}
	l.stats.noteWriteAcquire()
}

// ReleaseWrite drops the write stake, letting blocked readers and writers
// proceed. If the write stake is not currently held it returns a *StateError
// wrapping ErrLockNotHeld and changes nothing.
func (l *RWLock) ReleaseWrite() error {
	if !l.mu.tryUnlock() {
		return &StateError{Op: "ReleaseWrite", Err: ErrLockNotHeld}
	}
	l.stats.noteWriteRelease()
	return nil
}

// Readers returns the current reader count. The value is a diagnostic
// snapshot taken without the monitor mutex, so it is safe to call from
// inside a held write scope. A negative value means ReleaseRead was called
// without a matching AcquireRead.
func (l *RWLock) Readers() int64 {
	return l.readers.Load()
}

// Stats returns a snapshot of the lock's activity counters.
func (l *RWLock) Stats() Stats {
	return l.stats.snapshot()
}
