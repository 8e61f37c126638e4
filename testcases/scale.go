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

// scaleCases use output shapes which differ from the source shape, so
// that the two axes are scaled by different factors.
var scaleCases = []TestCase{
	{
		Name:     "point_wide_source",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(256, 64),
		Geometry: annotensor.Points{pt(32, 16), pt(128, 32), pt(224, 48)},
		Config:   out(64, 64),
	},
	{
		Name:     "point_tall_source",
		Encoder:  annotensor.PointEncoderName,
		Source:   src(64, 256),
		Geometry: annotensor.Points{pt(16, 32), pt(32, 128), pt(48, 224)},
		Config:   heat(64, 64, 2),
	},
	{
		Name:     "line_stretched",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(100, 50),
		Geometry: annotensor.Polyline{pt(0, 0), pt(99, 49)},
		Config:   out(32, 96),
	},
	{
		Name:     "curve_squashed",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: circle(32, 32, 25).Close()},
		Config:   out(128, 32),
	},
	{
		Name:     "polygon_anisotropic",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(64, 32),
		Geometry: annotensor.Polygon{fivePointStar(32, 16, 14)},
		Config:   out(64, 128),
	},
	{
		Name:     "mask_half_size",
		Encoder:  annotensor.MaskEncoderName,
		Source:   src(64, 64),
		Geometry: disc(32, 32, 10),
		Config:   out(32, 32),
	},
	{
		Name:     "extra_channel",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: zigzag(4, 32, 60, 30, 6),
		Config:   out(32, 32),
		Channels: 2,
	},
}
