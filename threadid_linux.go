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

//go:build linux

package threadid

import "golang.org/x/sys/unix"

// The kernel thread id is unique among live threads system-wide, and
// gettid(2) cannot fail for the calling thread.
func getThreadID() uint {
	return uint(unix.Gettid())
}
