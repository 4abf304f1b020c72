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

//go:build unix && !linux && cgo

package threadid

// #include <stdint.h>
// #include <pthread.h>
//
// static uintptr_t thread_self(void) {
// 	return (uintptr_t)pthread_self();
// }
import "C"

// pthread_t is opaque: a pointer into per-thread state on some libcs, a
// small integer on others. Its bit pattern is stable for the lifetime of
// the thread, which is all Get needs. The value is only ever compared,
// never dereferenced.
func getThreadID() uint {
	return uint(C.thread_self())
}
