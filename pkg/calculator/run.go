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

	"golang.org/x/sync/errgroup"
)

// Run pushes packets through calc in order and returns the outputs.
func Run(ctx context.Context, calc Calculator, packets []Packet) ([]Packet, error) {
	out := make([]Packet, 0, len(packets))
	for _, p := range packets {
		res, err := calc.Process(ctx, p)
		if err != nil {
			return out, fmt.Errorf("packet at timestamp %d: %w", p.Timestamp, err)
		}
		out = append(out, res)
	}
	return out, nil
}

// RunAll runs the same packets through every calculator concurrently and
// returns the outputs keyed like calcs. The first failure cancels the rest.
func RunAll(ctx context.Context, calcs map[string]Calculator, packets []Packet) (map[string][]Packet, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string][]Packet, len(calcs))
	for name, calc := range calcs {
		g.Go(func() error {
			out, err := Run(ctx, calc, packets)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			mu.Lock()
			results[name] = out
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
