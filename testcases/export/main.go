// seehuhn.de/go/annotensor - rasterise annotations into tensors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export writes all annotation test cases, together with the
// encoded tensors, to testdata/testcases.json.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor"
	"seehuhn.de/go/annotensor/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string                `json:"name"`
	Encoder  string                `json:"encoder"`
	Source   annotensor.SourceSize `json:"source"`
	Config   annotensor.Config     `json:"config"`
	Shape    [4]int                `json:"shape"`
	DType    string                `json:"dtype"`
	Geometry jsonGeometry          `json:"geometry"`
	Output   []float64             `json:"output"`
}

type jsonGeometry struct {
	Type     string        `json:"type"`
	Points   [][]float64   `json:"points,omitempty"`
	Rings    [][][]float64 `json:"rings,omitempty"`
	Path     []jsonSegment `json:"path,omitempty"`
	Channels int           `json:"channels,omitempty"`
	Pix      []uint8       `json:"pix,omitempty"`
	Float    []float32     `json:"float,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	dst, err := tc.Encode()
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Encoder:  tc.Encoder,
		Source:   tc.Source,
		Config:   tc.Config,
		Shape:    dst.Shape(),
		DType:    dst.DType().String(),
		Geometry: geometryToJSON(tc.Geometry),
	}

	shape := dst.Shape()
	for b := range shape[0] {
		for c := range shape[1] {
			for y := range shape[2] {
				for x := range shape[3] {
					jtc.Output = append(jtc.Output, dst.At(b, c, y, x))
				}
			}
		}
	}
	return jtc, nil
}

func geometryToJSON(g annotensor.Geometry) jsonGeometry {
	switch g := g.(type) {
	case annotensor.Points:
		return jsonGeometry{Type: "points", Points: pointsToJSON(g)}
	case annotensor.Polyline:
		return jsonGeometry{Type: "polyline", Points: pointsToJSON(g)}
	case annotensor.PixelSet:
		pts := make([][]float64, len(g))
		for i, p := range g {
			pts[i] = []float64{float64(p.X), float64(p.Y)}
		}
		return jsonGeometry{Type: "pixels", Points: pts}
	case annotensor.Polygon:
		rings := make([][][]float64, len(g))
		for i, ring := range g {
			rings[i] = pointsToJSON(ring)
		}
		return jsonGeometry{Type: "polygon", Rings: rings}
	case annotensor.Path:
		return jsonGeometry{Type: "path", Path: pathToJSON(g.Data)}
	case annotensor.Image:
		return jsonGeometry{Type: "image", Channels: g.Channels, Pix: g.Pix, Float: g.Float}
	}
	return jsonGeometry{}
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	if p == nil {
		return segs
	}
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: pointsToJSON(pts)}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		segs = append(segs, seg)
	}
	return segs
}
