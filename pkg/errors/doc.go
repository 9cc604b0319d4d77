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

// Package errors provides the structured error type shared by the registry,
// counter and calculator packages.
//
// Lookups that miss return a recoverable NOT_FOUND error. Duplicate
// fully-qualified registrations are reported as ALREADY_REGISTERED, which
// registry.MustRegister turns into a panic.
//
// Example usage:
//
//	_, err := reg.CreateByName("mediapipe.PassThroughCalculator", opts)
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // fall back to a default implementation
//	}
package errors
