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

package rwlock

// WithRead runs fn while holding a read stake. The stake is released on
// every exit path, including a panic inside fn; errors and panics from fn
// propagate unchanged.
func (l *RWLock) WithRead(fn func() error) error {
	l.AcquireRead()
	defer l.ReleaseRead()
	return fn()
}

// WithWrite runs fn while holding the write stake, releasing it on every
// exit path including a panic inside fn.
//
// WithWrite adds no reentrancy on top of AcquireWrite: nesting a second
// WithWrite (or a WithRead followed by WithWrite) on one goroutine
// deadlocks.
func (l *RWLock) WithWrite(fn func() error) error {
	l.AcquireWrite()
	defer func() {
		// The stake is held here, so release cannot fail.
		_ = l.ReleaseWrite()
	}()
	return fn()
}

// ReadGuard pairs an AcquireRead with a release at the caller's chosen
// scope exit. It carries no state beyond the lock reference; releasing
// twice decrements the reader count twice, exactly like two ReleaseRead
// calls.
type ReadGuard struct {
	lock *RWLock
}

// ReadScope takes a read stake and returns a guard for deferred release:
//
//	g := l.ReadScope()
//	defer g.Release()
func (l *RWLock) ReadScope() *ReadGuard {
	l.AcquireRead()
	return &ReadGuard{lock: l}
}

// Release drops the guard's read stake.
func (g *ReadGuard) Release() {
	g.lock.ReleaseRead()
}

// WriteGuard pairs an AcquireWrite with a release at the caller's chosen
// scope exit.
type WriteGuard struct {
	lock *RWLock
}

// WriteScope takes the write stake and returns a guard for deferred
// release. It blocks until all read stakes are dropped.
func (l *RWLock) WriteScope() *WriteGuard {
	l.AcquireWrite()
	return &WriteGuard{lock: l}
}

// Release drops the write stake. Releasing a stake that is no longer held
// returns a *StateError, the same as ReleaseWrite.
func (g *WriteGuard) Release() error {
	return g.lock.ReleaseWrite()
}
