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
	"runtime"
	"strconv"

	"github.com/ajroetker/go-ggmath/ggmath"
	"github.com/spf13/cobra"
)

// kernelRow names the kernel table used for one scalar type.
type kernelRow struct {
	Type   string `json:"type" yaml:"type"`
	Kernel string `json:"kernel" yaml:"kernel"`
}

// infoReport describes the dispatch state of the running process.
type infoReport struct {
	GOARCH         string      `json:"goarch" yaml:"goarch"`
	Level          string      `json:"level" yaml:"level"`
	Width          int         `json:"width" yaml:"width"`
	NoSIMD         bool        `json:"no_simd" yaml:"no_simd"`
	VekAccelerated bool        `json:"vek_accelerated" yaml:"vek_accelerated"`
	OverflowChecks bool        `json:"overflow_checks" yaml:"overflow_checks"`
	Kernels        []kernelRow `json:"kernels" yaml:"kernels"`
}

func (infoReport) header() []string { return []string{"KEY", "VALUE"} }

func (r infoReport) rows() [][]string {
	out := [][]string{
		{"goarch", r.GOARCH},
		{"level", r.Level},
		{"width", strconv.Itoa(r.Width)},
		{"no_simd", strconv.FormatBool(r.NoSIMD)},
		{"vek_accelerated", strconv.FormatBool(r.VekAccelerated)},
		{"overflow_checks", strconv.FormatBool(r.OverflowChecks)},
	}
	for _, k := range r.Kernels {
		out = append(out, []string{"kernel." + k.Type, k.Kernel})
	}
	return out
}

// kernelName returns the name of the kernel table of T, or "loop" when its
// operators always run element-wise.
func kernelName[T ggmath.Scalar]() string {
	if k := ggmath.KernelsFor[T](); k != nil {
		return k.Name
	}
	return "loop"
}

func collectInfo() infoReport {
	return infoReport{
		GOARCH:         runtime.GOARCH,
		Level:          ggmath.CurrentName(),
		Width:          ggmath.CurrentWidth(),
		NoSIMD:         ggmath.NoSimdEnv(),
		VekAccelerated: ggmath.VekAccelerated(),
		OverflowChecks: ggmath.OverflowChecks(),
		Kernels: []kernelRow{
			{"float32", kernelName[float32]()},
			{"float64", kernelName[float64]()},
			{"int8", kernelName[int8]()},
			{"int16", kernelName[int16]()},
			{"int32", kernelName[int32]()},
			{"int64", kernelName[int64]()},
			{"int", kernelName[int]()},
			{"uint8", kernelName[uint8]()},
			{"uint16", kernelName[uint16]()},
			{"uint32", kernelName[uint32]()},
			{"uint64", kernelName[uint64]()},
			{"uint", kernelName[uint]()},
			{"uintptr", kernelName[uintptr]()},
			{"bool", kernelName[bool]()},
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and kernels selected for this CPU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			r := collectInfo()
			a.logger.Debug("dispatch", "level", r.Level, "width", r.Width, "vek", r.VekAccelerated)
			return render(a.out, format, r)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", getEnvStr("GGMATH_FORMAT", formatText), "Output format: text, json, yaml")
	return cmd
}
