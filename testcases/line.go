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

package testcases

import (
	"math"

	"seehuhn.de/go/annotensor"
)

var lineCases = []TestCase{
	{
		Name:     "horizontal",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(10, 32), pt(54, 32)},
		Config:   out(64, 64),
	},
	{
		Name:     "vertical",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(32, 54), pt(32, 10)},
		Config:   out(64, 64),
	},
	{
		Name:     "diagonal",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(5, 5), pt(58, 58)},
		Config:   out(64, 64),
	},
	{
		Name:     "shallow",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(4, 20), pt(60, 33)},
		Config:   out(64, 64),
	},
	{
		Name:     "steep",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(20, 4), pt(33, 60)},
		Config:   out(64, 64),
	},
	{
		Name:     "zigzag",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: zigzag(6, 32, 58, 16, 8),
		Config:   out(64, 64),
	},
	{
		Name:     "closed_square",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(16, 16), pt(48, 16), pt(48, 48), pt(16, 48), pt(16, 16)},
		Config:   out(64, 64),
	},
	{
		Name:     "leaving_window",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(32, 32), pt(120, 50)},
		Config:   out(64, 64),
	},
	{
		Name:     "single_point",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(32, 32)},
		Config:   out(64, 64),
	},
	{
		Name:     "heatmap",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(10, 20), pt(54, 44)},
		Config:   heat(64, 64, 2),
	},
	{
		Name:     "heatmap_corner",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(10, 54), pt(32, 10), pt(54, 54)},
		Config:   heat(64, 64, 3),
	},
	{
		Name:     "heatmap_repeated_point",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polyline{pt(10, 32), pt(32, 32), pt(32, 32), pt(54, 32)},
		Config:   heat(64, 64, 2),
	},
	{
		Name:     "heatmap_spiral",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(128, 128),
		Geometry: spiral(64, 64, 4, 56, 3, 120),
		Config:   heat(64, 64, 1),
	},
}

// zigzag returns a polyline with n teeth between x1 and x2, oscillating
// around cy.
func zigzag(x1, cy, x2, amplitude float64, n int) annotensor.Polyline {
	res := make(annotensor.Polyline, 0, n+1)
	for i := range n + 1 {
		x := x1 + (x2-x1)*float64(i)/float64(n)
		y := cy - amplitude/2
		if i%2 == 1 {
			y = cy + amplitude/2
		}
		res = append(res, pt(x, y))
	}
	return res
}

// spiral returns an Archimedean spiral made of n segments.
func spiral(cx, cy, rMin, rMax, turns float64, n int) annotensor.Polyline {
	res := make(annotensor.Polyline, n+1)
	for i := range res {
		t := float64(i) / float64(n)
		r := rMin + (rMax-rMin)*t
		angle := 2 * math.Pi * turns * t
		res[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return res
}
