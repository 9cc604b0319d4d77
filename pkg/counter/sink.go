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

package counter

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/NVIDIA/calculator-registry/pkg/defaults"
	"github.com/NVIDIA/calculator-registry/pkg/errors"
)

// Sink receives the values taken by Table.Publish.
type Sink interface {
	Publish(ctx context.Context, snap Snapshot) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, snap Snapshot) error

// Publish calls f.
func (f SinkFunc) Publish(ctx context.Context, snap Snapshot) error {
	return f(ctx, snap)
}

type discardSink struct{}

func (discardSink) Publish(context.Context, Snapshot) error { return nil }

// LogSink writes each published snapshot as one structured log record.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger uses slog.Default at publish time.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Publish logs the snapshot at info level.
func (s *LogSink) Publish(ctx context.Context, snap Snapshot) error {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := make([]any, 0, len(snap.Values))
	for _, name := range snap.Names() {
		attrs = append(attrs, slog.Int64(name, snap.Values[name]))
	}
	logger.InfoContext(ctx, "counters published",
		slog.String("id", snap.ID.String()),
		slog.Int("count", len(snap.Values)),
		slog.Group("values", attrs...))
	return nil
}

// PrometheusSink accumulates published values into a gauge per counter name.
// A gauge is used because IncrementBy accepts negative amounts.
type PrometheusSink struct {
	values    *prometheus.GaugeVec
	publishes prometheus.Counter
	mu        sync.Mutex
	lastID    string
}

// NewPrometheusSink registers the sink metrics on reg. A nil reg uses
// prometheus.DefaultRegisterer. table labels the metrics so several tables
// can share one registerer.
func NewPrometheusSink(reg prometheus.Registerer, table string) *PrometheusSink {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	labels := prometheus.Labels{"table": table}
	return &PrometheusSink{
		values: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   defaults.MetricsNamespace,
				Name:        "counter_value",
				Help:        "Sum of all published values per counter",
				ConstLabels: labels,
			},
			[]string{"counter"},
		),
		publishes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace:   defaults.MetricsNamespace,
				Name:        "counter_publishes_total",
				Help:        "Total number of counter table publishes",
				ConstLabels: labels,
			},
		),
	}
}

// Publish adds every value in snap to its gauge.
func (s *PrometheusSink) Publish(_ context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, v := range snap.Values {
		s.values.WithLabelValues(name).Add(float64(v))
	}
	s.publishes.Inc()
	s.lastID = snap.ID.String()
	return nil
}

// LastSnapshotID returns the ID of the most recently published snapshot.
func (s *PrometheusSink) LastSnapshotID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastID
}

// MultiSink fans a snapshot out to several sinks. Every sink is called even
// when an earlier one fails; the failures are joined.
type MultiSink []Sink

// Publish calls each sink in order.
func (m MultiSink) Publish(ctx context.Context, snap Snapshot) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Publish(ctx, snap); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Wrap(errors.ErrCodeUnavailable, "counter sink failed", stderrors.Join(errs...))
}
