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
	"github.com/chewxy/math32"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor/tensor"
)

// GaussianDot draws an unnormalised Gaussian exp(-d²/(2σ²)) centred on c.
// Only cells within 3σ of c along each axis are touched. Each cell keeps
// the maximum of its old value and the kernel value.
func (r *Rasterizer) GaussianDot(dst tensor.Plane[float32], c vec.Vec2) {
	rad := kernelRadius * r.Sigma
	xMin, xMax, yMin, yMax, ok := r.window(c.X-rad, c.X+rad, c.Y-rad, c.Y+rad)
	if !ok {
		return
	}

	scale := 1 / (2 * r.Sigma * r.Sigma)
	for y := yMin; y <= yMax; y++ {
		dy := float64(y) - c.Y
		for x := xMin; x <= xMax; x++ {
			dx := float64(x) - c.X
			d2 := dx*dx + dy*dy
			dst.Max(x, y, math32.Exp(-float32(d2*scale)))
		}
	}
}

// GaussianLine draws a Gaussian ridge along the segment from p0 to p1.
// The value of each cell is exp(-d²/(2σ²)), where d is the distance from
// the cell centre to the closest point of the segment. The bounding box of
// the segment, grown by 3σ, limits the cells which are touched.
// Segments of (almost) zero length are drawn like [Rasterizer.GaussianDot].
func (r *Rasterizer) GaussianLine(dst tensor.Plane[float32], p0, p1 vec.Vec2) {
	rad := kernelRadius * r.Sigma
	xMin, xMax, yMin, yMax, ok := r.window(
		min(p0.X, p1.X)-rad, max(p0.X, p1.X)+rad,
		min(p0.Y, p1.Y)-rad, max(p0.Y, p1.Y)+rad)
	if !ok {
		return
	}

	d := p1.Sub(p0)
	len2 := d.Dot(d)
	degenerate := len2 < degenerateSegmentThreshold

	scale := 1 / (2 * r.Sigma * r.Sigma)
	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			q := vec.Vec2{X: float64(x), Y: float64(y)}
			var dist2 float64
			if degenerate {
				v := q.Sub(p0)
				dist2 = v.Dot(v)
			} else {
				t := clampFloat(q.Sub(p0).Dot(d)/len2, 0, 1)
				v := q.Sub(p0.Add(d.Mul(t)))
				dist2 = v.Dot(v)
			}
			dst.Max(x, y, math32.Exp(-float32(dist2*scale)))
		}
	}
}
