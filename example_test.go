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

package threadid_test

import (
	"fmt"
	"runtime"

	threadid "github.com/skyline-rs/thread-id"
)

func ExampleGet() {
	done := make(chan struct{})
	go func() {
		defer close(done)
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		fmt.Println("spawned thread has id", threadid.Get())
	}()
	<-done

	fmt.Println("main thread has id", threadid.Get())
}
