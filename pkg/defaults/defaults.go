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

package defaults

import "time"

// Namespace settings.
const (
	// NamespaceSeparator splits a fully-qualified name into namespace and short name.
	NamespaceSeparator = "."

	// TopNamespacesEnv extends the allowlisted top namespaces (comma separated).
	TopNamespacesEnv = "CALCREG_TOP_NAMESPACES"
)

// TopNamespaces are the namespaces whose registrations are also reachable
// under their short alias.
var TopNamespaces = []string{"mediapipe"}

// Logging settings.
const (
	// LogLevelEnv selects the slog level (debug, info, warn, error).
	LogLevelEnv = "LOG_LEVEL"

	// LogLevel is used when LogLevelEnv is unset or invalid.
	LogLevel = "info"
)

// Counter settings.
const (
	// PublishTimeout bounds a single counter sink publish triggered by Close.
	PublishTimeout = 5 * time.Second

	// MetricsNamespace prefixes all Prometheus metric names.
	MetricsNamespace = "calcreg"
)

// CLI settings.
const (
	// RunPackets is the number of packets the run command pushes by default.
	RunPackets = 1

	// RunTimeout bounds the run command end to end.
	RunTimeout = 30 * time.Second
)

// Server settings.
const (
	// ServerPort is the default listen port.
	ServerPort = 8080

	// ServerRateLimit is the sustained API request rate per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the API request burst size.
	ServerRateLimitBurst = 200

	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second

	// PublishInterval is how often a serving process publishes its counters.
	PublishInterval = time.Minute
)
