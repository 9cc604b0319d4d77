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

// Package calculator defines the calculator capability and its shared registry.
//
// A calculator is resolved from its textual type name, as it would appear in
// a pipeline configuration, through Registry(). The built-in calculators are
// installed by Install, which callers run once at start-up:
//
//	calculator.Install()
//	calc, err := calculator.Registry().CreateByName("PassThroughCalculator", calculator.Options{
//	    Node: "passthrough_1",
//	})
//
// The pipeline that wires calculators together is not part of this module.
package calculator
