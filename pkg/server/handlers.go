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

package server

import (
	"net/http"
	"slices"
	"time"

	"github.com/NVIDIA/calculator-registry/pkg/serializer"
)

// HealthResponse is returned by /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// RegistryListing is one entry of the /v1/registries response.
type RegistryListing struct {
	Registry string   `json:"registry"`
	Names    []string `json:"names"`
}

// NameStatus is the /v1/registries/{registry}/{name} response.
type NameStatus struct {
	Registry   string `json:"registry"`
	Name       string `json:"name"`
	Registered bool   `json:"registered"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.isReady() {
		serializer.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not_ready",
			Timestamp: time.Now(),
			Reason:    "server is not started",
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ready",
		Timestamp: time.Now(),
	})
}

// handleListRegistries returns every catalog sorted by name.
func (s *Server) handleListRegistries(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(s.catalogs))
	for name := range s.catalogs {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]RegistryListing, 0, len(names))
	for _, name := range names {
		out = append(out, RegistryListing{
			Registry: name,
			Names:    s.catalogs[name].GetRegisteredNames(),
		})
	}

	serializer.RespondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCheckName(w http.ResponseWriter, r *http.Request) {
	regName := r.PathValue("registry")
	cat, ok := s.catalogs[regName]
	if !ok {
		writeError(w, r, http.StatusNotFound, ErrCodeNotFound,
			"registry not found", false, map[string]any{"registry": regName})
		return
	}

	name := r.PathValue("name")
	status := NameStatus{
		Registry:   regName,
		Name:       name,
		Registered: cat.IsRegistered(name),
	}

	code := http.StatusOK
	if !status.Registered {
		code = http.StatusNotFound
	}
	serializer.RespondJSON(w, code, status)
}

// handleCounters reports current values without resetting them.
func (s *Server) handleCounters(w http.ResponseWriter, r *http.Request) {
	if s.config.Counters == nil {
		writeError(w, r, http.StatusServiceUnavailable, ErrCodeUnavailable,
			"no counter table configured", false, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, s.config.Counters.Snapshot())
}
