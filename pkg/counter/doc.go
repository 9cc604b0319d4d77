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

// Package counter provides a thread-safe table of named monotonic counters.
//
// Components obtain a counter by name and increment it; the table is
// periodically printed or published to a Sink. Publish snapshots every value
// and resets the table to zero in one step, so each increment is reported to
// the sink exactly once.
//
//	tbl := counter.New(counter.WithSink(counter.NewLogSink(slog.Default())))
//	defer tbl.Close()
//
//	packets := tbl.GetOrCreate("detector.packets")
//	packets.Increment()
//	packets.IncrementBy(5)
//
//	tbl.Print()                    // detector.packets: 6
//	err := tbl.Publish(ctx)        // sink receives 6, counter resets to 0
//
// All counters of a table share the table lock.
package counter
