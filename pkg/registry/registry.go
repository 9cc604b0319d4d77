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
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/NVIDIA/calculator-registry/pkg/errors"
	"github.com/NVIDIA/calculator-registry/pkg/namespace"
)

// Factory constructs an implementation from args.
// Errors are returned to CreateByName callers unchanged.
type Factory[R, A any] func(args A) (R, error)

type entry[R, A any] struct {
	factory Factory[R, A]
	// owner is the fully-qualified name that installed this entry.
	owner string
}

// Registry maps names to factories of one capability signature.
type Registry[R, A any] struct {
	name     string
	resolver *namespace.Resolver

	mu        sync.RWMutex
	factories map[string]entry[R, A]
}

// New creates an empty Registry.
func New[R, A any](opts ...Option) *Registry[R, A] {
	o := options{name: defaultName}
	for _, fn := range opts {
		fn(&o)
	}
	if o.resolver == nil {
		o.resolver = namespace.Global()
	}
	return &Registry[R, A]{
		name:      o.name,
		resolver:  o.resolver,
		factories: make(map[string]entry[R, A]),
	}
}

// Lazy returns an accessor for a shared Registry that is created on first call.
// Every call of the accessor returns the same instance.
func Lazy[R, A any](opts ...Option) func() *Registry[R, A] {
	return sync.OnceValue(func() *Registry[R, A] {
		return New[R, A](opts...)
	})
}

// Name returns the registry label used in logs and metrics.
func (r *Registry[R, A]) Name() string {
	return r.name
}

// Register adds factory under name and, when name has an allowlisted
// namespace, under its short alias. An alias already claimed by another
// registration is kept as is.
//
// It returns an ALREADY_REGISTERED error if name is taken and an
// INVALID_REQUEST error for an empty name or nil factory. A failed call leaves
// the registry unchanged.
func (r *Registry[R, A]) Register(name string, factory Factory[R, A]) (*Token, error) {
	if name == "" || factory == nil {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"registration requires a name and a factory",
			map[string]any{"registry": r.name, "name": name})
	}

	alias := r.resolver.NormalizeAlias(name)
	e := entry[R, A]{factory: factory, owner: name}

	r.mu.Lock()
	if _, exists := r.factories[name]; exists {
		r.mu.Unlock()
		registrationsTotal.WithLabelValues(r.name, resultDuplicate).Inc()
		return nil, errors.NewWithContext(errors.ErrCodeAlreadyRegistered,
			fmt.Sprintf("%s already registered in %s", name, r.name),
			map[string]any{"registry": r.name, "name": name})
	}
	aliasDropped := false
	if alias != name {
		if _, exists := r.factories[alias]; exists {
			aliasDropped = true
		} else {
			r.factories[alias] = e
		}
	}
	r.factories[name] = e
	r.mu.Unlock()

	registrationsTotal.WithLabelValues(r.name, resultRegistered).Inc()
	if aliasDropped {
		slog.Debug("alias already claimed, keeping earlier registration",
			"registry", r.name, "name", name, "alias", alias)
	} else {
		slog.Debug("registered", "registry", r.name, "name", name, "alias", alias)
	}

	return newToken(func() { r.Unregister(name) }), nil
}

// MustRegister is Register for start-up code: any registration error is fatal.
// A duplicate fully-qualified name means two components claim one identity,
// which cannot be resolved at runtime.
func (r *Registry[R, A]) MustRegister(name string, factory Factory[R, A]) *Token {
	tok, err := r.Register(name, factory)
	if err != nil {
		panic(err)
	}
	return tok
}

// Unregister removes name and the alias it installed. Removing a name that is
// not registered is a no-op. An alias owned by a different registration is
// left in place.
func (r *Registry[R, A]) Unregister(name string) {
	alias := r.resolver.NormalizeAlias(name)

	r.mu.Lock()
	if alias != name {
		if e, ok := r.factories[alias]; ok && e.owner == name {
			delete(r.factories, alias)
		}
	}
	_, removed := r.factories[name]
	delete(r.factories, name)
	r.mu.Unlock()

	if removed {
		slog.Debug("unregistered", "registry", r.name, "name", name)
	}
}

// CreateByName constructs the implementation registered under name.
// It returns a NOT_FOUND error when name is not registered.
func (r *Registry[R, A]) CreateByName(name string, args A) (R, error) {
	r.mu.RLock()
	e, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		lookupsTotal.WithLabelValues(r.name, resultNotFound).Inc()
		var zero R
		return zero, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("no factory registered for %s in %s", name, r.name),
			map[string]any{"registry": r.name, "name": name})
	}
	lookupsTotal.WithLabelValues(r.name, resultFound).Inc()
	return e.factory(args)
}

// CreateByNameInNamespace constructs the implementation registered under
// ns + "." + short.
func (r *Registry[R, A]) CreateByNameInNamespace(ns, short string, args A) (R, error) {
	return r.CreateByName(namespace.Qualify(ns, short), args)
}

// IsRegistered reports whether name is registered, as a full name or alias.
func (r *Registry[R, A]) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// GetRegisteredNames returns a sorted snapshot of every registered key,
// aliases included.
func (r *Registry[R, A]) GetRegisteredNames() []string {
	r.mu.RLock()
	names := slices.Collect(maps.Keys(r.factories))
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Len returns the number of registered keys, aliases included.
func (r *Registry[R, A]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
