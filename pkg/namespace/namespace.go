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

package namespace

import (
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/NVIDIA/calculator-registry/pkg/defaults"
)

// Separator joins namespace segments and the short name.
const Separator = defaults.NamespaceSeparator

// Resolver holds an immutable set of allowlisted top namespaces.
// The zero value allowlists nothing.
type Resolver struct {
	top map[string]struct{}
}

// New creates a Resolver allowlisting the given namespaces.
// Empty entries and trailing separators are ignored.
func New(namespaces ...string) *Resolver {
	top := make(map[string]struct{}, len(namespaces))
	for _, ns := range namespaces {
		ns = strings.TrimSuffix(strings.TrimSpace(ns), Separator)
		if ns == "" {
			continue
		}
		top[ns] = struct{}{}
	}
	return &Resolver{top: top}
}

var global = sync.OnceValue(func() *Resolver {
	namespaces := slices.Clone(defaults.TopNamespaces)
	if extra := os.Getenv(defaults.TopNamespacesEnv); extra != "" {
		namespaces = append(namespaces, strings.Split(extra, ",")...)
	}
	return New(namespaces...)
})

// Global returns the process-wide Resolver, initializing it on first use.
func Global() *Resolver {
	return global()
}

// TopNamespaces returns the process-wide allowlist.
func TopNamespaces() []string {
	return Global().TopNamespaces()
}

// NormalizeAlias strips an allowlisted namespace using the process-wide Resolver.
func NormalizeAlias(name string) string {
	return Global().NormalizeAlias(name)
}

// TopNamespaces returns a sorted copy of the allowlisted namespaces.
func (r *Resolver) TopNamespaces() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.top))
	for ns := range r.top {
		out = append(out, ns)
	}
	slices.Sort(out)
	return out
}

// Contains reports whether ns is allowlisted.
func (r *Resolver) Contains(ns string) bool {
	if r == nil {
		return false
	}
	_, ok := r.top[ns]
	return ok
}

// NormalizeAlias returns the last segment of name when everything before it
// is an allowlisted namespace. Otherwise name, including one with an empty
// last segment, is returned unchanged.
func (r *Resolver) NormalizeAlias(name string) string {
	i := strings.LastIndex(name, Separator)
	if i < 0 || i+len(Separator) == len(name) {
		return name
	}
	if !r.Contains(name[:i]) {
		return name
	}
	return name[i+len(Separator):]
}

// Qualify joins a namespace and a short name.
// An empty namespace yields the short name.
func Qualify(ns, short string) string {
	if ns == "" {
		return short
	}
	return ns + Separator + short
}
