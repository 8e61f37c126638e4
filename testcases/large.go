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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor"
)

// largeCases have outputs of 512×512 cells or more. They are used by the
// benchmarks and are not part of [All].
var largeCases = []TestCase{
	{
		Name:     "large_rectangle",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(512, 512),
		Geometry: annotensor.Polygon{rectangle(50, 50, 462, 462)},
		Config:   out(512, 512),
	},
	{
		Name:     "large_concentric",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(512, 512),
		Geometry: annotensor.Polygon{rectangle(56, 56, 456, 456), reversed(rectangle(156, 156, 356, 356))},
		Config:   out(512, 512),
	},
	{
		Name:     "large_diamond",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(512, 512),
		Geometry: annotensor.Polygon{diamond(256, 256, 180)},
		Config:   out(512, 512),
	},
	{
		Name:     "large_grid",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(512, 512),
		Geometry: rectangleGrid(8, 8, 512, 512, 4),
		Config:   out(512, 512),
	},
	{
		Name:     "large_clipped",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(512, 512),
		Geometry: annotensor.Polygon{rectangle(-100, 100, 612, 400)},
		Config:   out(512, 512),
	},
	{
		Name:     "large_heatmap_points",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(1024, 1024),
		Geometry: pointCircle(512, 512, 400, 64),
		Config:   heat(512, 512, 4),
	},
	{
		Name:     "large_heatmap_spiral",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(1024, 1024),
		Geometry: spiral(512, 512, 20, 480, 6, 400),
		Config:   heat(512, 512, 2),
	},
	{
		Name:     "large_curve",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(512, 512),
		Geometry: annotensor.Path{Data: circle(256, 256, 220)},
		Config:   out(512, 512),
	},
	{
		Name:     "large_image",
		Encoder:  annotensor.ImageEncoderName,
		Source:   src(640, 480),
		Geometry: rgbPattern(640, 480),
		Config:   raw(512, 512, true),
		Channels: 3,
	},
}

// diamond returns a square ring rotated by 45 degrees.
func diamond(cx, cy, r float64) []vec.Vec2 {
	return []vec.Vec2{pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy)}
}

// rectangleGrid returns a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) annotensor.Polygon {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	var res annotensor.Polygon
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			res = append(res, rectangle(x1, y1, x2, y2))
		}
	}
	return res
}
