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

var pointCases = []TestCase{
	{
		Name:     "single",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Points{pt(20, 30)},
		Config:   out(64, 64),
	},
	{
		Name:     "downscaled",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(640, 480),
		Geometry: annotensor.Points{pt(100, 100), pt(320, 240), pt(639, 479)},
		Config:   out(64, 48),
	},
	{
		Name:     "outside",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Points{pt(-10, 30), pt(100, 100), pt(30, -0.4)},
		Config:   out(64, 64),
	},
	{
		Name:     "half_way",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(32, 32),
		Geometry: annotensor.Points{pt(10.5, 10.5), pt(20.49, 20.51)},
		Config:   out(32, 32),
	},
	{
		Name:     "heatmap",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Points{pt(32, 32)},
		Config:   heat(64, 64, 4),
	},
	{
		Name:     "heatmap_overlap",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Points{pt(28, 32), pt(36, 32), pt(32, 36)},
		Config:   heat(64, 64, 3),
	},
	{
		Name:     "heatmap_subpixel",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(128, 128),
		Geometry: annotensor.Points{pt(63, 63), pt(64.5, 20.25)},
		Config:   heat(64, 64, 1.5),
	},
	{
		Name:     "heatmap_border",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Points{pt(0, 0), pt(63, 0), pt(0, 63), pt(63, 63)},
		Config:   heat(64, 64, 5),
	},
	{
		Name:     "circle_of_points",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(64, 64),
		Geometry: pointCircle(32, 32, 20, 12),
		Config:   heat(64, 64, 2),
	},
	{
		Name:     "second_channel",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Points{pt(10, 50)},
		Config: annotensor.Config{
			TargetChannel: 1,
			TargetBatch:   1,
			OutWidth:      32,
			OutHeight:     32,
			Mode:          annotensor.Binary,
		},
		Channels: 3,
	},
}

// pointCircle returns n points evenly spaced on a circle.
func pointCircle(cx, cy, r float64, n int) annotensor.Points {
	res := make(annotensor.Points, n)
	for i := range res {
		angle := float64(i) * 2 * math.Pi / float64(n)
		res[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return res
}
