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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/calculator-registry/pkg/defaults"
)

// Server serves registry introspection and counter publication over HTTP.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	catalogs    map[string]Catalog
	mu          sync.RWMutex
	ready       bool
}

// New creates a server from config. A nil config uses NewConfig.
func New(config *Config) *Server {
	if config == nil {
		config = NewConfig()
	}
	if config.Gatherer == nil {
		config.Gatherer = prometheus.DefaultGatherer
	}

	s := &Server{
		config:      config,
		rateLimiter: rate.NewLimiter(config.RateLimit, config.RateLimitBurst),
		catalogs:    make(map[string]Catalog, len(config.Catalogs)),
	}
	for _, c := range config.Catalogs {
		s.catalogs[c.Name()] = c
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Address, config.Port),
		Handler:           s.routes(),
		ReadTimeout:       config.ReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       config.IdleTimeout,
	}

	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET /v1/registries", s.withMiddleware(s.handleListRegistries))
	mux.HandleFunc("GET /v1/registries/{registry}/{name}", s.withMiddleware(s.handleCheckName))
	mux.HandleFunc("GET /v1/counters", s.withMiddleware(s.handleCounters))

	return mux
}

// SetReady marks the server as ready to serve traffic.
func (s *Server) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.SetReady(true)

	slog.Info("server listening", "address", s.httpServer.Addr)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.WithoutCancel(ctx))
	case err := <-errChan:
		return err
	}
}

// Shutdown stops accepting traffic and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}

// publishLoop publishes the counter table every interval until ctx is done,
// then publishes one last time.
func (s *Server) publishLoop(ctx context.Context) error {
	table := s.config.Counters
	if table == nil {
		return nil
	}

	interval := s.config.PublishInterval
	if interval <= 0 {
		interval = defaults.PublishInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return table.Close()
		case <-ticker.C:
			if err := table.Publish(ctx); err != nil {
				slog.Warn("counter publish failed", "error", err)
			}
		}
	}
}

// RunWithConfig runs the HTTP server and the counter publisher until ctx is
// canceled.
func RunWithConfig(ctx context.Context, config *Config) error {
	server := New(config)

	slog.Info("starting server",
		"name", server.config.Name,
		"version", server.config.Version,
		"address", server.httpServer.Addr,
		"catalogs", len(server.catalogs),
		"rateLimit", float64(server.config.RateLimit),
		"rateLimitBurst", server.config.RateLimitBurst,
		"publishInterval", server.config.PublishInterval,
		"shutdownTimeout", server.config.ShutdownTimeout,
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Start(gctx)
	})

	g.Go(func() error {
		return server.publishLoop(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
