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

//go:build unix && !linux && !cgo

package threadid

// pthread_self is only reachable through the C runtime on this family of
// targets. The undefined identifier fails the build with a message that
// names the cause.
var _ = THREAD_ID_REQUIRES_CGO_ON_THIS_TARGET
