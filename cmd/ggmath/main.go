// Copyright 2025 go-ggmath Authors
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

// Command ggmath inspects the vector types of package ggmath on the
// running platform.
//
// Usage:
//
//	ggmath layout [--format text|json|yaml] [--type float32]
//	ggmath info [--format text|json|yaml]
//	ggmath version
//
// The default output format is read from GGMATH_FORMAT. Setting
// GGMATH_NO_SIMD makes every operator use the portable kernels, which
// `ggmath info` reflects.
package main

import (
	"os"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
