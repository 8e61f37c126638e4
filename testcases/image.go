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
	"seehuhn.de/go/annotensor/tensor"
)

var imageCases = []TestCase{
	{
		Name:     "gray_copy",
		Encoder:  annotensor.ImageEncoderName,
		Source:   src(32, 32),
		Geometry: grayGradient(32, 32),
		Config:   raw(32, 32, true),
	},
	{
		Name:     "gray_broadcast",
		Encoder:  annotensor.ImageEncoderName,
		Source:   src(32, 32),
		Geometry: grayGradient(32, 32),
		Config:   raw(64, 64, true),
		Channels: 3,
	},
	{
		Name:     "rgb_downscaled",
		Encoder:  annotensor.ImageEncoderName,
		Source:   src(64, 48),
		Geometry: rgbPattern(64, 48),
		Config:   raw(32, 24, true),
		Channels: 3,
	},
	{
		Name:     "rgb_truncated",
		Encoder:  annotensor.ImageEncoderName,
		Source:   src(16, 16),
		Geometry: rgbPattern(16, 16),
		Config:   raw(16, 16, true),
		Channels: 2,
	},
	{
		Name:     "rgb_bytes",
		Encoder:  annotensor.ImageEncoderName,
		Source:   src(40, 30),
		Geometry: rgbPattern(40, 30),
		Config:   raw(64, 48, false),
		Channels: 3,
		DType:    tensor.Uint8,
	},
	{
		Name:     "float_range",
		Encoder:  annotensor.ImageEncoderName,
		Source:   src(16, 16),
		Geometry: floatRamp(16, 16, 1000),
		Config:   raw(32, 32, true),
	},
}

// raw returns an image configuration for a width×height output.
func raw(width, height int, normalize bool) annotensor.Config {
	return annotensor.Config{
		OutWidth:  width,
		OutHeight: height,
		Mode:      annotensor.Raw,
		Normalize: normalize,
	}
}

// grayGradient returns a diagonal gray ramp.
func grayGradient(width, height int) annotensor.Image {
	pix := make([]uint8, width*height)
	for y := range height {
		for x := range width {
			pix[y*width+x] = uint8(255 * (x + y) / (width + height - 2))
		}
	}
	return annotensor.Image{Pix: pix, Channels: 1}
}

// rgbPattern returns an image with a horizontal ramp in red, a vertical
// ramp in green and a checkerboard in blue.
func rgbPattern(width, height int) annotensor.Image {
	pix := make([]uint8, 0, 3*width*height)
	for y := range height {
		for x := range width {
			var b uint8
			if (x/4+y/4)%2 == 0 {
				b = 255
			}
			pix = append(pix, uint8(255*x/(width-1)), uint8(255*y/(height-1)), b)
		}
	}
	return annotensor.Image{Pix: pix, Channels: 3}
}

// floatRamp returns a single-channel float image with values in
// [0, maxValue].
func floatRamp(width, height int, maxValue float32) annotensor.Image {
	data := make([]float32, width*height)
	for i := range data {
		data[i] = maxValue * float32(i) / float32(len(data)-1)
	}
	return annotensor.Image{Float: data, Channels: 1}
}
