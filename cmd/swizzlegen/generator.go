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

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
)

// components are the lane names, in lane order.
var components = []string{"x", "y", "z", "w"}

// builders lists the component splits of the builder functions. A part of
// 1 is a scalar argument, 2 or 3 a vector argument.
var builders = [][]int{
	{2, 1},
	{1, 2},
	{2, 1, 1},
	{1, 2, 1},
	{1, 1, 2},
	{2, 2},
	{3, 1},
	{1, 3},
}

// Generate returns the formatted source of the swizzle file.
func Generate(pkg string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by swizzlegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkg)

	for n := 1; n <= 4; n++ {
		for _, p := range Patterns(n, true) {
			emitRead(&buf, p)
		}
	}
	for n := 1; n <= 4; n++ {
		for _, p := range Patterns(n, false) {
			emitSet(&buf, p)
			emitWith(&buf, p)
		}
	}
	for _, packed := range []bool{false, true} {
		for _, parts := range builders {
			emitBuilder(&buf, parts, packed)
		}
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

// Patterns returns every sequence of n lane indices, in lexicographic
// order. Without repeat, an index appears at most once per sequence.
func Patterns(n int, repeat bool) [][]int {
	var out [][]int
	var walk func(prefix []int)
	walk = func(prefix []int) {
		if len(prefix) == n {
			out = append(out, append([]int(nil), prefix...))
			return
		}
		for i := range components {
			if !repeat && contains(prefix, i) {
				continue
			}
			walk(append(prefix, i))
		}
	}
	walk(nil)
	return out
}

func contains(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}

// Name returns the exported name of a pattern, e.g. "ZYX".
func Name(p []int) string {
	var b strings.Builder
	for _, i := range p {
		b.WriteString(strings.ToUpper(components[i]))
	}
	return b.String()
}

// constraintFor returns the storage constraint of vectors that hold every
// lane in p.
func constraintFor(p []int) string {
	switch highest(p) {
	case 2:
		return "AtLeast3"
	case 3:
		return "AtLeast4"
	}
	return "Storage"
}

func highest(p []int) int {
	h := 0
	for _, i := range p {
		h = max(h, i)
	}
	return h
}

func laneList(p []int, recv string) string {
	parts := make([]string, len(p))
	for k, i := range p {
		parts[k] = fmt.Sprintf("%s.%s", recv, components[i])
	}
	return strings.Join(parts, ", ")
}

func emitRead(buf *bytes.Buffer, p []int) {
	name := Name(p)
	cons := constraintFor(p)
	if len(p) == 1 {
		fmt.Fprintf(buf, "\n// %s returns lane %s of v.\n", name, components[p[0]])
		fmt.Fprintf(buf, "func %s[T Scalar, S %s[T]](v Vector[T, S]) T { return v.data[%d] }\n", name, cons, p[0])
		return
	}
	args := make([]string, len(p))
	for k, i := range p {
		args[k] = fmt.Sprintf("v.data[%d]", i)
	}
	fmt.Fprintf(buf, "\n// %s returns (%s).\n", name, laneList(p, "v"))
	fmt.Fprintf(buf, "func %s[T Scalar, S %s[T]](v Vector[T, S]) Vec%d[T] {\n", name, cons, len(p))
	fmt.Fprintf(buf, "\treturn New%d(%s)\n", len(p), strings.Join(args, ", "))
	fmt.Fprintf(buf, "}\n")
}

func emitSet(buf *bytes.Buffer, p []int) {
	name := Name(p)
	cons := constraintFor(p)
	if len(p) == 1 {
		fmt.Fprintf(buf, "\n// Set%s stores x in lane %s of v.\n", name, components[p[0]])
		fmt.Fprintf(buf, "func Set%s[T Scalar, S %s[T]](v *Vector[T, S], x T) { v.Lanes()[%d] = x }\n", name, cons, p[0])
		return
	}
	names := make([]string, len(p))
	for k, i := range p {
		names[k] = components[i]
	}
	fmt.Fprintf(buf, "\n// Set%s stores the lanes of src in lanes %s of v.\n", name, strings.Join(names, ", "))
	fmt.Fprintf(buf, "func Set%s[T Scalar, S %s[T], V Storage%d[T]](v *Vector[T, S], src Vector[T, V]) {\n", name, cons, len(p))
	fmt.Fprintf(buf, "\tlanes := v.Lanes()\n")
	for k, i := range p {
		fmt.Fprintf(buf, "\tlanes[%d] = src.data[%d]\n", i, k)
	}
	fmt.Fprintf(buf, "}\n")
}

func emitWith(buf *bytes.Buffer, p []int) {
	name := Name(p)
	cons := constraintFor(p)
	if len(p) == 1 {
		fmt.Fprintf(buf, "\n// With%s returns v with lane %s replaced by x.\n", name, components[p[0]])
		fmt.Fprintf(buf, "func With%s[T Scalar, S %s[T]](v Vector[T, S], x T) Vector[T, S] {\n", name, cons)
		fmt.Fprintf(buf, "\tSet%s(&v, x)\n", name)
		fmt.Fprintf(buf, "\treturn v\n")
		fmt.Fprintf(buf, "}\n")
		return
	}
	names := make([]string, len(p))
	for k, i := range p {
		names[k] = components[i]
	}
	fmt.Fprintf(buf, "\n// With%s returns v with lanes %s replaced by the lanes of src.\n", name, strings.Join(names, ", "))
	fmt.Fprintf(buf, "func With%s[T Scalar, S %s[T], V Storage%d[T]](v Vector[T, S], src Vector[T, V]) Vector[T, S] {\n", name, cons, len(p))
	fmt.Fprintf(buf, "\tSet%s(&v, src)\n", name)
	fmt.Fprintf(buf, "\treturn v\n")
	fmt.Fprintf(buf, "}\n")
}

func emitBuilder(buf *bytes.Buffer, parts []int, packed bool) {
	n := 0
	split := make([]string, len(parts))
	for k, c := range parts {
		n += c
		split[k] = fmt.Sprint(c)
	}
	suffix, layout := "", "aligned"
	if packed {
		suffix, layout = "P", "packed"
	}
	name := fmt.Sprintf("Vec%d%sFrom%s", n, suffix, strings.Join(split, "_"))

	var typeParams, params, lanes []string
	for k, c := range parts {
		arg := string(rune('a' + k))
		if c == 1 {
			params = append(params, arg+" T")
			lanes = append(lanes, arg)
			continue
		}
		tp := strings.ToUpper(arg)
		typeParams = append(typeParams, fmt.Sprintf("%s Storage%d[T]", tp, c))
		params = append(params, fmt.Sprintf("%s Vector[T, %s]", arg, tp))
		for i := range c {
			lanes = append(lanes, fmt.Sprintf("%s.%s", arg, components[i]))
		}
	}
	args := make([]string, len(lanes))
	for i, l := range lanes {
		if strings.Contains(l, ".") {
			arg, comp, _ := strings.Cut(l, ".")
			args[i] = fmt.Sprintf("%s.data[%d]", arg, strings.Index("xyzw", comp))
		} else {
			args[i] = l
		}
	}

	fmt.Fprintf(buf, "\n// %s returns the %s vector (%s).\n", name, layout, strings.Join(lanes, ", "))
	fmt.Fprintf(buf, "func %s[T Scalar, %s](%s) Vec%d%s[T] {\n", name, strings.Join(typeParams, ", "), strings.Join(params, ", "), n, suffix)
	fmt.Fprintf(buf, "\treturn New%d%s(%s)\n", n, suffix, strings.Join(args, ", "))
	fmt.Fprintf(buf, "}\n")
}
