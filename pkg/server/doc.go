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

// Package server exposes calculator registries and counter tables over HTTP.
//
// # Endpoints
//
//	GET /health                      liveness
//	GET /ready                       readiness (503 until Start runs)
//	GET /metrics                     Prometheus exposition
//	GET /v1/registries               registered names of every catalog
//	GET /v1/registries/{reg}/{name}  200 when name is registered, 404 otherwise
//	GET /v1/counters                 current counter values (not reset)
//
// API routes pass through request ID, panic recovery, rate limiting, logging
// and metrics middleware. While running, the server publishes its counter
// table every PublishInterval and once more on shutdown.
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment:
//
//	cfg := server.NewConfig()
//	cfg.Catalogs = []server.Catalog{calculator.Registry()}
//	cfg.Counters = counter.Default()
//	err := server.RunWithConfig(ctx, cfg)
package server
