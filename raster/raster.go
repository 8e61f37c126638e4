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

// Package raster burns geometric primitives into float32 planes.
//
// All drawing methods take coordinates in plane space, where the integer
// point (x, y) is the centre of the cell in column x and row y. Binary
// primitives set cells to 1. Gaussian primitives combine with the existing
// cell values using max, so that overlapping contributions never exceed 1
// and the result does not depend on drawing order.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor/tensor"
)

// Rasterizer draws points, line segments and polygons into planes.
// Create one instance per output window and reuse it; the buffers used by
// [Rasterizer.Fill] grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Clip bounds output to this rectangle in plane coordinates.
	// Coordinates must be integer-aligned and the rectangle non-empty.
	// Cells are addressed in [LLx, URx) × [LLy, URy).
	Clip rect.Rect

	// CTM maps path coordinates to plane coordinates in [Rasterizer.Flatten].
	// Must be non-singular.
	CTM matrix.Matrix

	// Sigma is the standard deviation of the Gaussian kernel, in cells.
	// Must be positive for the Gaussian primitives.
	Sigma float64

	// Flatness controls curve approximation accuracy in cells.
	// Typical values: 0.25–1.0. Must be positive.
	Flatness float64

	// smallPathThreshold is the maximum bounding box area (in cells) for
	// filling with 2D buffers. Larger polygons use an active edge list.
	smallPathThreshold int

	// Buffers for polygon filling, reused across calls.
	cover       []float32
	area        []float32
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool

	edgeBBoxFirst bool
	edgeXMin      float64
	edgeXMax      float64
	edgeYMin      float64
	edgeYMax      float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle,
// with identity CTM and default values for the other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		Clip:     clip,
		CTM:      matrix.Identity,
		Sigma:    defaultSigma,
		Flatness: defaultFlatness,

		smallPathThreshold: defaultSmallPathThreshold,
	}
}

// Window returns a Rasterizer clipped to [0, width) × [0, height).
func Window(width, height int) *Rasterizer {
	return NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})
}

// bounds returns the inclusive cell range of the clip rectangle.
func (r *Rasterizer) bounds() (xLo, xHi, yLo, yHi int) {
	return int(r.Clip.LLx), int(r.Clip.URx) - 1, int(r.Clip.LLy), int(r.Clip.URy) - 1
}

// cell rounds p to the nearest cell and clamps the result into the clip
// rectangle.
func (r *Rasterizer) cell(p vec.Vec2) (x, y int) {
	xLo, xHi, yLo, yHi := r.bounds()
	x = int(math.Round(clampFloat(p.X, float64(xLo), float64(xHi))))
	y = int(math.Round(clampFloat(p.Y, float64(yLo), float64(yHi))))
	return x, y
}

// window returns the cells with centres in [x0, x1] × [y0, y1], restricted
// to the clip rectangle. The result is empty if ok is false.
func (r *Rasterizer) window(x0, x1, y0, y1 float64) (xMin, xMax, yMin, yMax int, ok bool) {
	xLo, xHi, yLo, yHi := r.bounds()
	if math.IsNaN(x0+x1+y0+y1) || x1 < float64(xLo) || x0 > float64(xHi) || y1 < float64(yLo) || y0 > float64(yHi) {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Ceil(x0)), xLo)
	xMax = min(int(math.Floor(x1)), xHi)
	yMin = max(int(math.Ceil(y0)), yLo)
	yMax = min(int(math.Floor(y1)), yHi)
	return xMin, xMax, yMin, yMax, xMin <= xMax && yMin <= yMax
}

// Dot sets the cell nearest to p to 1. Points outside the clip rectangle
// are moved to the closest cell on its border.
func (r *Rasterizer) Dot(dst tensor.Plane[float32], p vec.Vec2) {
	x, y := r.cell(p)
	dst.Set(x, y, 1)
}

// Line sets every cell visited by Bresenham's algorithm between the cells
// nearest to p0 and p1 to 1.
//
// Both endpoints are clamped into the clip rectangle before drawing, so a
// segment leaving the window is drawn towards the clamped endpoint. This
// differs from true line clipping for segments which are mostly outside.
func (r *Rasterizer) Line(dst tensor.Plane[float32], p0, p1 vec.Vec2) {
	x0, y0 := r.cell(p0)
	x1, y1 := r.cell(p1)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}

	e := dx + dy
	for {
		dst.Set(x0, y0, 1)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Default values for rasterizer parameters.
const (
	// defaultSigma is the Gaussian standard deviation used when the caller
	// does not set one.
	defaultSigma = 2.0

	// defaultFlatness is the default curve flattening tolerance in cells.
	defaultFlatness = 0.25

	// defaultSmallPathThreshold is the bounding box area at which polygon
	// filling switches to the active edge list.
	defaultSmallPathThreshold = 65536
)

// Numerical tolerances.
const (
	// degenerateSegmentThreshold is the squared length below which a
	// segment is treated as a single point.
	degenerateSegmentThreshold = 1e-12

	// horizontalEdgeThreshold is the minimum vertical extent for a polygon
	// edge to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// kernelRadius is the Gaussian window half-width in units of Sigma.
	kernelRadius = 3.0
)
