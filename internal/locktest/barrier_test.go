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

package locktest

import (
	"testing"
	"time"
)

func TestBarrierHoldsUntilFull(t *testing.T) {
	t.Parallel()

	const parties = 4
	b := NewBarrier(parties)
	done := make(chan struct{}, parties-1)

	for i := 0; i < parties-1; i++ {
		go func() {
			b.Await()
			done <- struct{}{}
		}()
	}

	select {
	case <-done:
		t.Fatal("barrier released before all parties arrived")
	case <-time.After(50 * time.Millisecond):
	}

	b.Await()

	for i := 0; i < parties-1; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("barrier did not release a waiting party")
		}
	}
}

func TestBarrierSingleParty(t *testing.T) {
	t.Parallel()

	b := NewBarrier(1)
	done := make(chan struct{})
	go func() {
		b.Await()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("single-party barrier should release immediately")
	}
}
