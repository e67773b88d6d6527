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
	"errors"
	"fmt"
)

// ErrLockNotHeld reports a release of a write stake that is not held.
var ErrLockNotHeld = errors.New("lock not held")

// StateError wraps a lock protocol violation with the operation that
// detected it. It is returned synchronously from the offending call; the
// lock state is left unchanged.
type StateError struct {
	Err error
	Op  string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("rwlock: %s: %v", e.Op, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}
