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
	"seehuhn.de/go/annotensor"
)

var maskCases = []TestCase{
	{
		Name:     "three_pixels",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(10, 10),
		Geometry: annotensor.PixelSet{{X: 2, Y: 3}, {X: 5, Y: 5}, {X: 8, Y: 1}},
		Config:   out(10, 10),
	},
	{
		Name:     "duplicates",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(16, 16),
		Geometry: annotensor.PixelSet{{X: 4, Y: 4}, {X: 4, Y: 4}, {X: 12, Y: 4}, {X: 4, Y: 4}},
		Config:   out(16, 16),
	},
	{
		Name:     "blob_downscaled",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(128, 128),
		Geometry: disc(64, 64, 30),
		Config:   out(32, 32),
	},
	{
		Name:     "blob_upscaled",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(16, 16),
		Geometry: disc(8, 8, 5),
		Config:   out(64, 64),
	},
	{
		Name:     "outside",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(32, 32),
		Geometry: annotensor.PixelSet{{X: -3, Y: 5}, {X: 40, Y: 40}, {X: 16, Y: 99}},
		Config:   out(32, 32),
	},
	{
		Name:     "empty",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(32, 32),
		Geometry: annotensor.PixelSet{},
		Config:   out(32, 32),
	},
}

// disc returns all pixels with centres within distance r of (cx, cy).
func disc(cx, cy, r int) annotensor.PixelSet {
	var res annotensor.PixelSet
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				res = append(res, annotensor.Pixel{X: x, Y: y})
			}
		}
	}
	return res
}
