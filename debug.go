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
	"fmt"
	"io"
	"os"
)

// debugEnabled controls whether debug logging is active.
// It can be set via environment variable or SetDebugEnabled.
var debugEnabled = false

// debugOut receives debug lines; defaults to stderr.
var debugOut io.Writer = os.Stderr

func init() {
	// Enable debug logging if the RWLOCK_DEBUG or DEBUG environment
	// variable is set.
	if os.Getenv("RWLOCK_DEBUG") != "" || os.Getenv("DEBUG") != "" {
		debugEnabled = true
	}
}

// Debugf prints debug information when debug mode is enabled. The lock
// emits lines from the contended writer path only, so the overhead of a
// disabled Debugf is a single branch.
func Debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "DEBUG: "+format+"\n", args...)
}

// SetDebugEnabled allows programmatic control of debug logging.
// Useful for testing or application-controlled debug modes.
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// SetDebugOutput redirects debug lines to w. Passing nil restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOut = w
}
