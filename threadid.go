// Copyright 2026 The Thread-ID Authors.
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

// Package threadid returns an identifier for the calling operating system
// thread.
//
// For diagnostics and debugging it is often useful to log an identifier
// that is different for every thread. The scheduler migrates goroutines
// between threads, so a caller that needs the value to stay stable across
// calls must pin itself with runtime.LockOSThread first.
package threadid

// Get returns an integer that is unique to the calling thread: two calls
// from the same thread return the same value, and calls from distinct
// threads that are live at the same time return distinct values. The
// operating system may reuse an identifier after its thread exits.
//
// Get does not allocate, does not lock, and performs no I/O. On Linux it is
// additionally async-signal-safe; elsewhere only the guarantees of the
// underlying platform primitive apply.
func Get() uint {
	return getThreadID()
}
