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

// Command swizzlegen generates the component accessors of package ggmath.
//
// Usage:
//
//	swizzlegen -output swizzle_gen.go
//
// Or via go:generate, from the ggmath package directory:
//
//	//go:generate go run ../cmd/swizzlegen -output swizzle_gen.go
//
// The generated file holds:
//  1. Read swizzles (X, XY, ZYX, WWXY, ...): every pattern of 1 to 4
//     components, repetition allowed, each accepting only vectors long
//     enough to hold its highest component.
//  2. Write swizzles (SetXY, WithZYX, ...): every pattern of 1 to 4
//     distinct components.
//  3. Builders (Vec3From2_1, Vec4PFrom1_3, ...) that assemble a vector from
//     scalars and shorter vectors.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "swizzle_gen.go", "Output file")
	packageOut = flag.String("pkg", "ggmath", "Output package name")
	stdout     = flag.Bool("stdout", false, "Write to stdout instead of -output")
)

func main() {
	flag.Parse()

	src, err := Generate(*packageOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *stdout {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s\n", *outputFile)
}
