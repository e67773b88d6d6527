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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCountOperations(t *testing.T) {
	t.Parallel()

	l := New()
	require.NoError(t, l.WithRead(func() error { return nil }))
	require.NoError(t, l.WithRead(func() error { return nil }))
	require.NoError(t, l.WithWrite(func() error { return nil }))

	s := l.Stats()
	assert.EqualValues(t, 2, s.ReadAcquires)
	assert.EqualValues(t, 2, s.ReadReleases)
	assert.EqualValues(t, 1, s.WriteAcquires)
	assert.EqualValues(t, 1, s.WriteReleases)
	assert.EqualValues(t, 0, s.ContendedWrites)
}

func TestStatsCountContendedWrite(t *testing.T) {
	t.Parallel()

	l := New()
	l.AcquireRead()

	acquired := make(chan struct{})
	go func() {
		l.AcquireWrite()
		close(acquired)
		_ = l.ReleaseWrite()
	}()

	for l.Stats().ContendedWrites == 0 {
		time.Sleep(time.Millisecond)
	}
	l.ReleaseRead()

	select {
	case <-acquired:
	case <-time.After(waitLimit):
		t.Fatal("contended writer never acquired")
	}

	s := l.Stats()
	assert.EqualValues(t, 1, s.ContendedWrites)
	assert.EqualValues(t, 1, s.WriteAcquires)
	assert.EqualValues(t, 1, s.WriteReleases)
}

func TestStatsSnapshotIsCopy(t *testing.T) {
	t.Parallel()

	l := New()
	before := l.Stats()
	require.NoError(t, l.WithRead(func() error { return nil }))

	assert.EqualValues(t, 0, before.ReadAcquires)
	assert.EqualValues(t, 1, l.Stats().ReadAcquires)
}
