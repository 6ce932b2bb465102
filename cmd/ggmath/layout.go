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
	"fmt"
	"strconv"

	"github.com/ajroetker/go-ggmath/ggmath"
	"github.com/spf13/cobra"
)

// layoutRow is the layout of one vector shape of one scalar type.
type layoutRow struct {
	Type          string `json:"type" yaml:"type"`
	Shape         string `json:"shape" yaml:"shape"`
	Lanes         int    `json:"lanes" yaml:"lanes"`
	PhysicalLanes int    `json:"physical_lanes" yaml:"physical_lanes"`
	Size          int    `json:"size" yaml:"size"`
	Align         int    `json:"align" yaml:"align"`
	Alignment     string `json:"alignment" yaml:"alignment"`
}

type layoutTable []layoutRow

func (layoutTable) header() []string {
	return []string{"TYPE", "SHAPE", "LANES", "PHYSICAL", "SIZE", "ALIGN", "LAYOUT"}
}

func (t layoutTable) rows() [][]string {
	out := make([][]string, len(t))
	for i, r := range t {
		out[i] = []string{
			r.Type, r.Shape, strconv.Itoa(r.Lanes), strconv.Itoa(r.PhysicalLanes),
			strconv.Itoa(r.Size), strconv.Itoa(r.Align), r.Alignment,
		}
	}
	return out
}

// scalarLayout reports the six shapes of one scalar type.
type scalarLayout struct {
	name    string
	layouts func() []ggmath.Layout
}

var scalarLayouts = []scalarLayout{
	{"float32", ggmath.Layouts[float32]},
	{"float64", ggmath.Layouts[float64]},
	{"int8", ggmath.Layouts[int8]},
	{"int16", ggmath.Layouts[int16]},
	{"int32", ggmath.Layouts[int32]},
	{"int64", ggmath.Layouts[int64]},
	{"int", ggmath.Layouts[int]},
	{"uint8", ggmath.Layouts[uint8]},
	{"uint16", ggmath.Layouts[uint16]},
	{"uint32", ggmath.Layouts[uint32]},
	{"uint64", ggmath.Layouts[uint64]},
	{"uint", ggmath.Layouts[uint]},
	{"uintptr", ggmath.Layouts[uintptr]},
	{"bool", ggmath.Layouts[bool]},
}

// shapeName returns the alias of a layout, e.g. "Vec3" or "Vec3P".
func shapeName(l ggmath.Layout) string {
	name := "Vec" + strconv.Itoa(l.Lanes)
	if _, ok := l.Alignment.(ggmath.Packed); ok {
		name += "P"
	}
	return name
}

// collectLayouts returns the layout rows of the named scalar type, or of
// every scalar type when typeName is empty.
func (a *app) collectLayouts(typeName string) (layoutTable, error) {
	var t layoutTable
	for _, s := range scalarLayouts {
		if typeName != "" && typeName != s.name {
			continue
		}
		for _, l := range s.layouts() {
			if err := l.Validate(); err != nil {
				return nil, fmt.Errorf("%s %s: %w", s.name, shapeName(l), err)
			}
			t = append(t, layoutRow{
				Type:          s.name,
				Shape:         shapeName(l),
				Lanes:         l.Lanes,
				PhysicalLanes: l.PhysicalLanes,
				Size:          int(l.Size),
				Align:         int(l.Align),
				Alignment:     l.Alignment.String(),
			})
		}
		a.logger.Debug("collected layouts", "type", s.name)
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("unknown scalar type %q", typeName)
	}
	return t, nil
}

func newLayoutCmd(a *app) *cobra.Command {
	var format, typeName string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the size and alignment of every vector shape",
		Long: `Print, for every scalar type and each of the six vector shapes
(Vec2, Vec3, Vec4 and their packed forms), the logical and physical lane
count, the size and the alignment in bytes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			t, err := a.collectLayouts(typeName)
			if err != nil {
				return err
			}
			a.logger.Debug("rendering layouts", "rows", len(t), "format", format)
			return render(a.out, format, t)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", getEnvStr("GGMATH_FORMAT", formatText), "Output format: text, json, yaml")
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Only print this scalar type (e.g. float32)")
	return cmd
}
