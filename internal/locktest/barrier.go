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

// Package locktest provides small synchronization helpers for the lock's
// test suites.
package locktest

import "github.com/modguz/go-rwlock/internal/syncutil"

// Barrier blocks goroutines in Await until n of them have arrived, then
// releases them all at once. It is single-use: arrivals past the nth pass
// through immediately.
type Barrier struct {
	release chan struct{}
	mu      syncutil.Mutex
	n       int
	arrived int
}

// NewBarrier creates a Barrier for n parties.
func NewBarrier(n int) *Barrier {
	return &Barrier{
		n:       n,
		release: make(chan struct{}),
	}
}

// Await blocks until n goroutines have called Await.
func (b *Barrier) Await() {
	b.mu.Lock()
	b.arrived++
	if b.arrived == b.n {
		close(b.release)
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()
	<-b.release
}
