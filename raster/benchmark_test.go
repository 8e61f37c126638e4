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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor/tensor"
)

// BenchmarkFillO benchmarks filling an "O" shape.
func BenchmarkFillO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := Window(size, size)
			dst := tensor.NewPlane[float32](size, size)

			center := float64(size) / 2
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30
			rings := r.Flatten(makeOPath(center, center, outerR, innerR))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Fill(rings, EvenOdd, func(y, xMin int, coverage []float32) {
					copy(dst.Row(y, size)[xMin:], coverage)
				})
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkGaussianLine benchmarks a heatmap segment across the plane.
func BenchmarkGaussianLine(b *testing.B) {
	sizes := []int{64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := Window(size, size)
			dst := tensor.NewPlane[float32](size, size)
			p0 := vec.Vec2{X: 0.1 * float64(size), Y: 0.2 * float64(size)}
			p1 := vec.Vec2{X: 0.9 * float64(size), Y: 0.7 * float64(size)}

			b.ReportAllocs()
			for b.Loop() {
				r.GaussianLine(dst, p0, p1)
			}
		})
	}
}

// makeOPath creates an "O" shape: outer circle counter-clockwise, inner
// circle clockwise.
func makeOPath(cx, cy, outerR, innerR float64) *path.Data {
	p := &path.Data{}
	p = addCircleToPath(p, cx, cy, outerR, false)
	p = addCircleToPath(p, cx, cy, innerR, true)
	return p
}

// addCircleToPath adds a circle to p using cubic Bézier curves.
func addCircleToPath(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	const k = 0.5522847498
	kr := k * r

	p = p.MoveTo(pt(cx, cy-r))
	if clockwise {
		p = p.CubeTo(pt(cx-kr, cy-r), pt(cx-r, cy-kr), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy+kr), pt(cx-kr, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx+kr, cy+r), pt(cx+r, cy+kr), pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy-kr), pt(cx+kr, cy-r), pt(cx, cy-r))
	} else {
		p = p.CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r))
	}
	return p.Close()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
