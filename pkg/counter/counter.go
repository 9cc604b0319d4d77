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
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/calculator-registry/pkg/defaults"
)

// Counter is a handle to one named value in a Table.
// Handles stay valid for the lifetime of the table.
type Counter struct {
	name  string
	table *Table
	value int64
}

// Name returns the counter name.
func (c *Counter) Name() string {
	return c.name
}

// Increment adds one.
func (c *Counter) Increment() {
	c.IncrementBy(1)
}

// IncrementBy adds amount. Zero is a no-op; negative amounts are applied as given.
func (c *Counter) IncrementBy(amount int64) {
	c.table.mu.Lock()
	c.value += amount
	c.table.mu.Unlock()
}

// Get returns the current value.
func (c *Counter) Get() int64 {
	c.table.mu.RLock()
	defer c.table.mu.RUnlock()
	return c.value
}

// Snapshot is the set of values taken by one Publish.
type Snapshot struct {
	ID     uuid.UUID        `json:"id" yaml:"id"`
	Time   time.Time        `json:"time" yaml:"time"`
	Values map[string]int64 `json:"values" yaml:"values"`
}

// Names returns the counter names in the snapshot, sorted.
func (s Snapshot) Names() []string {
	return slices.Sorted(maps.Keys(s.Values))
}

// Table holds named counters.
type Table struct {
	sink   Sink
	out    io.Writer
	logger *slog.Logger

	mu       sync.RWMutex
	counters map[string]*Counter
}

// Option configures a Table.
type Option func(*Table)

// WithSink sets where Publish reports values. The default discards them.
func WithSink(s Sink) Option {
	return func(t *Table) {
		if s != nil {
			t.sink = s
		}
	}
}

// WithOutput sets the Print destination. The default is os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(t *Table) {
		if w != nil {
			t.out = w
		}
	}
}

// WithLogger sets the logger used for table diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates an empty Table.
func New(opts ...Option) *Table {
	t := &Table{
		sink:     discardSink{},
		out:      os.Stderr,
		logger:   slog.Default(),
		counters: make(map[string]*Counter),
	}
	for _, fn := range opts {
		fn(t)
	}
	return t
}

var defaultTable = sync.OnceValue(func() *Table {
	return New(WithSink(NewLogSink(nil)))
})

// Default returns the process-wide Table, created on first use with a LogSink.
func Default() *Table {
	return defaultTable()
}

// GetOrCreate returns the counter called name, creating it at zero if needed.
func (t *Table) GetOrCreate(name string) *Counter {
	t.mu.RLock()
	c, ok := t.counters[name]
	t.mu.RUnlock()
	if ok {
		return c
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok = t.counters[name]; ok {
		return c
	}
	c = &Counter{name: name, table: t}
	t.counters[name] = c
	return c
}

// Len returns the number of counters.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.counters)
}

// Snapshot returns the current values without resetting them.
func (t *Table) Snapshot() map[string]int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.valuesLocked()
}

func (t *Table) valuesLocked() map[string]int64 {
	values := make(map[string]int64, len(t.counters))
	for name, c := range t.counters {
		values[name] = c.value
	}
	return values
}

// Print writes one "name: value" line per counter, sorted by name.
// An empty table writes nothing.
func (t *Table) Print() {
	values := t.Snapshot()
	if len(values) == 0 {
		return
	}
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if _, err := fmt.Fprintf(t.out, "%s: %d\n", name, values[name]); err != nil {
			t.logger.Warn("failed to print counters", "error", err)
			return
		}
	}
}

// Publish resets every counter to zero and reports the values they held to
// the sink. The snapshot and reset happen under one lock; the sink is called
// after the lock is released.
func (t *Table) Publish(ctx context.Context) error {
	t.mu.Lock()
	values := t.valuesLocked()
	for _, c := range t.counters {
		c.value = 0
	}
	t.mu.Unlock()

	snap := Snapshot{
		ID:     uuid.New(),
		Time:   time.Now().UTC(),
		Values: values,
	}
	if err := t.sink.Publish(ctx, snap); err != nil {
		return fmt.Errorf("failed to publish %d counters: %w", len(values), err)
	}
	return nil
}

// Close publishes the final values. Counters remain usable afterwards.
func (t *Table) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaults.PublishTimeout)
	defer cancel()
	return t.Publish(ctx)
}
