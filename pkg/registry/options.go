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

import "github.com/NVIDIA/calculator-registry/pkg/namespace"

const defaultName = "default"

type options struct {
	name     string
	resolver *namespace.Resolver
}

// Option configures a Registry.
type Option func(*options)

// WithName sets the label used for the registry in logs, errors and metrics.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithResolver replaces the process-wide namespace resolver used to derive aliases.
func WithResolver(r *namespace.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}
