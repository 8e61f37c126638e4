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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor"
)

var polygonCases = []TestCase{
	{
		Name:     "triangle",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polygon{triangle(10, 50, 32, 10, 54, 50)},
		Config:   out(64, 64),
	},
	{
		Name:     "star",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polygon{fivePointStar(32, 32, 25)},
		Config:   out(64, 64),
	},
	{
		Name:     "rectangle",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polygon{rectangle(10, 10, 44, 44)},
		Config:   out(64, 64),
	},
	{
		Name:     "rectangle_downscaled",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(256, 256),
		Geometry: annotensor.Polygon{rectangle(40, 40, 176, 176)},
		Config:   out(64, 64),
	},
	{
		Name:     "ring",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polygon{rectangle(8, 8, 56, 56), reversed(rectangle(20, 20, 44, 44))},
		Config:   out(64, 64),
	},
	{
		Name:     "overlapping",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polygon{rectangle(8, 8, 40, 40), rectangle(24, 24, 56, 56)},
		Config:   out(64, 64),
	},
	{
		Name:     "thin",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polygon{rectangle(8, 30, 56, 30.4)},
		Config:   out(64, 64),
	},
	{
		Name:     "partly_outside",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Polygon{triangle(-20, 10, 80, 20, 32, 90)},
		Config:   out(64, 64),
	},
}

// triangle returns a triangular ring.
func triangle(x1, y1, x2, y2, x3, y3 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// fivePointStar returns a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	order := []int{0, 2, 4, 1, 3}
	res := make([]vec.Vec2, len(order))
	for i, j := range order {
		res[i] = pts[j]
	}
	return res
}

// rectangle returns an axis-aligned rectangular ring.
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// reversed returns the ring with opposite orientation.
func reversed(ring []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(ring))
	for i, p := range ring {
		res[len(ring)-1-i] = p
	}
	return res
}
