// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package registry

import (
	"sync"
	"sync/atomic"
)

// Token revokes one registration. Revoke runs the removal at most once no
// matter how often it is called or from how many goroutines. The zero value
// is a valid token whose Revoke does nothing.
//
// Tokens are meant to be released with defer:
//
//	tok := reg.MustRegister("mediapipe.FakeCalculator", newFake)
//	defer tok.Revoke()
type Token struct {
	once    sync.Once
	revoke  func()
	revoked atomic.Bool
}

func newToken(revoke func()) *Token {
	return &Token{revoke: revoke}
}

// Revoke removes the registration the first time it is called.
// Calling Revoke on a nil Token is a no-op.
func (t *Token) Revoke() {
	if t == nil {
		return
	}
	t.once.Do(func() {
		if t.revoke != nil {
			t.revoke()
		}
		t.revoke = nil
		t.revoked.Store(true)
	})
}

// Revoked reports whether Revoke has completed.
func (t *Token) Revoked() bool {
	return t != nil && t.revoked.Load()
}
