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

package raster

import (
	"image"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"

	"seehuhn.de/go/annotensor/tensor"
)

// Bilinear resamples src into dst using bilinear interpolation.
//
// Cell centres are aligned, i.e. destination cell x samples the source at
// (x+0.5)·src.Width/dst.Width − 0.5. Sample positions outside the source
// are clamped to the border cells. If both planes have the same size,
// the values are copied exactly.
func Bilinear(dst, src tensor.Plane[float32]) {
	if dst.Width == src.Width && dst.Height == src.Height {
		for y := range dst.Height {
			copy(dst.Row(y, dst.Width), src.Row(y, src.Width))
		}
		return
	}

	sx := float32(src.Width) / float32(dst.Width)
	sy := float32(src.Height) / float32(dst.Height)
	xLast := float32(src.Width - 1)
	yLast := float32(src.Height - 1)

	for y := range dst.Height {
		fy := min(max((float32(y)+0.5)*sy-0.5, 0), yLast)
		y0 := int(math32.Floor(fy))
		y1 := min(y0+1, src.Height-1)
		wy := fy - float32(y0)

		for x := range dst.Width {
			fx := min(max((float32(x)+0.5)*sx-0.5, 0), xLast)
			x0 := int(math32.Floor(fx))
			x1 := min(x0+1, src.Width-1)
			wx := fx - float32(x0)

			top := src.At(x0, y0)*(1-wx) + src.At(x1, y0)*wx
			bot := src.At(x0, y1)*(1-wx) + src.At(x1, y1)*wx
			dst.Set(x, y, top*(1-wy)+bot*wy)
		}
	}
}

// BilinearBytes resamples an 8-bit plane into dst. Intermediate values
// are computed at higher precision and rounded back into [0, 255].
func BilinearBytes(dst, src tensor.Plane[uint8]) {
	if dst.Width == src.Width && dst.Height == src.Height {
		for y := range dst.Height {
			copy(dst.Row(y, dst.Width), src.Row(y, src.Width))
		}
		return
	}

	srcImg := &image.Gray{
		Pix:    src.Pix,
		Stride: src.Stride,
		Rect:   image.Rect(0, 0, src.Width, src.Height),
	}
	dstImg := image.NewGray(image.Rect(0, 0, dst.Width, dst.Height))
	draw.BiLinear.Scale(dstImg, dstImg.Rect, srcImg, srcImg.Rect, draw.Src, nil)

	for y := range dst.Height {
		copy(dst.Row(y, dst.Width), dstImg.Pix[y*dstImg.Stride:y*dstImg.Stride+dst.Width])
	}
}
