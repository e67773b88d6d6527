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

// condMutex is a token-in-channel mutex: the channel holds one token, Lock
// takes it, Unlock puts it back. It implements sync.Locker so it can back a
// sync.Cond.
//
// sync.Mutex cannot serve here because releasing it unheld is an
// unrecoverable runtime fault, while ReleaseWrite must report that misuse
// as an ordinary error. With a channel the unheld case is a non-blocking
// failed send.
//
// Not reentrant: a second Lock from the holding goroutine blocks forever.
// Like the channel it is built on, the mutex is not tied to a particular
// goroutine; holders are expected to release from the acquiring goroutine.
type condMutex struct {
	ch chan struct{}
}

func newCondMutex() *condMutex {
	m := &condMutex{ch: make(chan struct{}, 1)}
	m.ch <- struct{}{}
	return m
}

// Lock takes the token, blocking until it is available.
func (m *condMutex) Lock() {
	<-m.ch
}

// Unlock returns the token. Only internal paths that provably hold the
// mutex call it (including sync.Cond.Wait); external over-release goes
// through tryUnlock instead.
func (m *condMutex) Unlock() {
	if !m.tryUnlock() {
		panic("rwlock: unlock of unlocked monitor mutex")
	}
}

// tryUnlock returns the token if the mutex is held, reporting whether it
// was. A full channel means nobody holds the mutex.
func (m *condMutex) tryUnlock() bool {
	select {
	case m.ch <- struct{}{}:
		return true
	default:
		return false
	}
}
