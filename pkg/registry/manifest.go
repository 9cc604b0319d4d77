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
	"slices"
	"sync"
)

// Manifest is an ordered list of registrations applied once during start-up.
// Building the list is not synchronized; Install is.
type Manifest[R, A any] struct {
	entries []manifestEntry[R, A]

	once sync.Once
	revs *Revocations
}

type manifestEntry[R, A any] struct {
	name    string
	factory Factory[R, A]
}

// NewManifest creates an empty Manifest.
func NewManifest[R, A any]() *Manifest[R, A] {
	return &Manifest[R, A]{}
}

// Add appends a registration and returns the manifest for chaining.
func (m *Manifest[R, A]) Add(name string, factory Factory[R, A]) *Manifest[R, A] {
	m.entries = append(m.entries, manifestEntry[R, A]{name: name, factory: factory})
	return m
}

// Names returns the fully-qualified names in registration order.
func (m *Manifest[R, A]) Names() []string {
	names := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		names = append(names, e.name)
	}
	return names
}

// Install registers every entry into r in order using MustRegister. Only the
// first call has an effect; later calls return the same Revocations.
func (m *Manifest[R, A]) Install(r *Registry[R, A]) *Revocations {
	m.once.Do(func() {
		revs := &Revocations{}
		for _, e := range m.entries {
			revs.tokens = append(revs.tokens, r.MustRegister(e.name, e.factory))
		}
		m.revs = revs
	})
	return m.revs
}

// Revocations groups the tokens produced by one Manifest install.
type Revocations struct {
	mu     sync.Mutex
	tokens []*Token
}

// Len returns the number of tokens held.
func (rv *Revocations) Len() int {
	if rv == nil {
		return 0
	}
	rv.mu.Lock()
	defer rv.mu.Unlock()
	return len(rv.tokens)
}

// RevokeAll revokes every registration in reverse install order.
func (rv *Revocations) RevokeAll() {
	if rv == nil {
		return
	}
	rv.mu.Lock()
	tokens := slices.Clone(rv.tokens)
	rv.mu.Unlock()

	for _, t := range slices.Backward(tokens) {
		t.Revoke()
	}
}
