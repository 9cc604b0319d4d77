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

// Package namespace resolves short aliases for fully-qualified registration names.
//
// A fully-qualified name such as "mediapipe.PassThroughCalculator" consists of
// a namespace ("mediapipe") and a short name joined by Separator. When the
// namespace is one of the allowlisted top namespaces, registries also make the
// entry reachable under the short name alone.
//
// The process-wide allowlist is built lazily, exactly once, from
// defaults.TopNamespaces plus the comma separated CALCREG_TOP_NAMESPACES
// environment variable. It is immutable afterwards, so lookups take no locks
// and are safe from init functions.
//
//	namespace.NormalizeAlias("mediapipe.PassThroughCalculator") // "PassThroughCalculator"
//	namespace.NormalizeAlias("vendor.PassThroughCalculator")    // unchanged
package namespace
