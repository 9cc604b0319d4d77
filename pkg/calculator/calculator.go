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

package calculator

import (
	"context"
	"fmt"
	"sync"

	"github.com/NVIDIA/calculator-registry/pkg/counter"
	"github.com/NVIDIA/calculator-registry/pkg/errors"
	"github.com/NVIDIA/calculator-registry/pkg/registry"
)

// Namespace is the top namespace of the built-in calculators.
const Namespace = "mediapipe"

// Built-in calculator names.
const (
	PassThroughName   = Namespace + ".PassThroughCalculator"
	PacketCounterName = Namespace + ".PacketCounterCalculator"
	ConstantName      = Namespace + ".ConstantCalculator"
)

// Packet is a timestamped payload flowing between calculators.
type Packet struct {
	Timestamp int64 `json:"timestamp" yaml:"timestamp"`
	Payload   any   `json:"payload" yaml:"payload"`
}

// Calculator processes one packet at a time.
type Calculator interface {
	Process(ctx context.Context, in Packet) (Packet, error)
}

// Options are the construction arguments passed to every calculator factory.
type Options struct {
	// Node is the graph node name; used to prefix counter names.
	Node string
	// Params holds calculator specific settings.
	Params map[string]string
	// Counters receives operational counts. Nil uses counter.Default().
	Counters *counter.Table
}

func (o Options) counters() *counter.Table {
	if o.Counters != nil {
		return o.Counters
	}
	return counter.Default()
}

// Factory constructs a Calculator.
type Factory = registry.Factory[Calculator, Options]

// Registry returns the shared calculator registry.
var Registry = registry.Lazy[Calculator, Options](registry.WithName("calculators"))

var builtins = sync.OnceValue(func() *registry.Manifest[Calculator, Options] {
	return registry.NewManifest[Calculator, Options]().
		Add(PassThroughName, newPassThrough).
		Add(PacketCounterName, newPacketCounter).
		Add(ConstantName, newConstant)
})

// Builtins returns the manifest of built-in calculators.
func Builtins() *registry.Manifest[Calculator, Options] {
	return builtins()
}

// Install registers the built-in calculators into Registry(). Only the first
// call registers; the returned Revocations are shared by all callers.
func Install() *registry.Revocations {
	return Builtins().Install(Registry())
}

type passThrough struct{}

func newPassThrough(Options) (Calculator, error) {
	return passThrough{}, nil
}

func (passThrough) Process(_ context.Context, in Packet) (Packet, error) {
	return in, nil
}

type packetCounter struct {
	packets *counter.Counter
}

func newPacketCounter(opts Options) (Calculator, error) {
	node := opts.Node
	if node == "" {
		node = "PacketCounterCalculator"
	}
	return &packetCounter{
		packets: opts.counters().GetOrCreate(node + ".packets"),
	}, nil
}

func (c *packetCounter) Process(_ context.Context, in Packet) (Packet, error) {
	c.packets.Increment()
	return in, nil
}

type constant struct {
	value string
}

func newConstant(opts Options) (Calculator, error) {
	v, ok := opts.Params["value"]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s requires param %q", ConstantName, "value"),
			map[string]any{"node": opts.Node})
	}
	return constant{value: v}, nil
}

func (c constant) Process(ctx context.Context, in Packet) (Packet, error) {
	if err := ctx.Err(); err != nil {
		return Packet{}, err
	}
	return Packet{Timestamp: in.Timestamp, Payload: c.value}, nil
}
