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

import "github.com/modguz/go-rwlock/internal/syncutil"

// Stats is a point-in-time snapshot of a lock's activity counters.
// ContendedWrites counts AcquireWrite calls that had to park at least once
// because readers were active; uncontended acquisitions are counted only in
// WriteAcquires.
type Stats struct {
	ReadAcquires    uint64
	ReadReleases    uint64
	WriteAcquires   uint64
	WriteReleases   uint64
	ContendedWrites uint64
}

// lockStats guards the counters with its own leaf mutex so the hot paths
// never hold it together with anything but the monitor. Build with
// -tags=deadlock to run it under go-deadlock detection.
type lockStats struct {
	mu syncutil.Mutex
	s  Stats
}

func (ls *lockStats) noteReadAcquire() {
	ls.mu.Lock()
	ls.s.ReadAcquires++
	ls.mu.Unlock()
}

func (ls *lockStats) noteReadRelease() {
	ls.mu.Lock()
	ls.s.ReadReleases++
	ls.mu.Unlock()
}

func (ls *lockStats) noteWriteAcquire() {
	ls.mu.Lock()
	ls.s.WriteAcquires++
	ls.mu.Unlock()
}

func (ls *lockStats) noteWriteRelease() {
	ls.mu.Lock()
	ls.s.WriteReleases++
	ls.mu.Unlock()
}

func (ls *lockStats) noteWriteContended() {
	ls.mu.Lock()
	ls.s.ContendedWrites++
	ls.mu.Unlock()
}

func (ls *lockStats) snapshot() Stats {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.s
}
