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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor/tensor"
)

// FillRule selects how overlapping polygon rings are combined.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// edge is a polygon edge in area coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Fill computes the area coverage of the polygon formed by rings and calls
// emit row by row. Each ring is implicitly closed.
//
// Coverage uses area coordinates, where cell (x, y) is the unit square
// [x, x+1) × [y, y+1). Callers working with cell centres (as all other
// Rasterizer methods do) shift the rings by (0.5, 0.5) first.
// The coverage slice passed to emit is only valid during the call.
func (r *Rasterizer) Fill(rings [][]vec.Vec2, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	for _, ring := range rings {
		n := len(ring)
		if n < 3 {
			continue
		}
		for i := range n {
			r.addEdge(ring[i], ring[(i+1)%n])
		}
	}
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.edgeXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.edgeXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.edgeYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.edgeYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// fillSmall rasterises using 2D buffers covering the bounding box.
func (r *Rasterizer) fillSmall(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin
	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]

		eyMin := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		eyMax := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := eyMin; y < eyMax; y++ {
			row := y - yMin
			off := row * width
			accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(rule, coverage, r.area[off:off+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// fillLarge rasterises one scanline at a time, using an active edge list.
func (r *Rasterizer) fillLarge(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				// swap-remove finished edges
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(rule, r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// FillMask sets every cell whose coverage by the polygon is at least
// threshold to 1. The rings are given in cell-centre coordinates.
func (r *Rasterizer) FillMask(dst tensor.Plane[float32], rings [][]vec.Vec2, rule FillRule, threshold float32) {
	shifted := make([][]vec.Vec2, len(rings))
	half := vec.Vec2{X: 0.5, Y: 0.5}
	for i, ring := range rings {
		shifted[i] = make([]vec.Vec2, len(ring))
		for j, p := range ring {
			shifted[i][j] = p.Add(half)
		}
	}
	r.Fill(shifted, rule, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			if c >= threshold {
				dst.Set(xMin+i, y, 1)
			}
		}
	})
}

func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if r.edgeBBoxFirst {
		r.edgeXMin, r.edgeXMax = min(p0.X, p1.X), max(p0.X, p1.X)
		r.edgeYMin, r.edgeYMax = min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		r.edgeBBoxFirst = false
		return
	}
	r.edgeXMin = min(r.edgeXMin, p0.X, p1.X)
	r.edgeXMax = max(r.edgeXMax, p0.X, p1.X)
	r.edgeYMin = min(r.edgeYMin, p0.Y, p1.Y)
	r.edgeYMax = max(r.edgeYMax, p0.Y, p1.Y)
}

// Coverage accumulation:
//
// For each cell we track
//   cover: signed vertical extent of edges crossing the cell
//   area:  cover weighted by the distance of the crossing from the right
//          side of the cell
//
// Scanning left to right, the coverage of cell i is accum + area[i],
// after which accum += cover[i]. The result is the signed area of the
// polygon inside the cell.

// accumulateEdge adds the part of e inside scanline y to cover and area,
// which are indexed by x - xMin.
func accumulateEdge(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	if pixRight < xMin {
		// everything left of the window counts as full coverage of the
		// first column
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= xMax {
		return
	}

	if pixLeft == pixRight {
		addSpan(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), yTop)
		segBot := min(max(ya, yb), yBot)
		if segBot <= segTop {
			continue
		}
		addSpan(e, segTop, segBot, sign, pix, cover, area, xMin, xMax)
	}
}

// addSpan adds the part of e between yTop and yBot, which lies inside
// column pix.
func addSpan(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	if pix < xMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= xMax {
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	xFrac := xMid - float64(pix)

	idx := pix - xMin
	cover[idx] += c
	area[idx] += c * float32(1-xFrac)
}

func integrate(rule FillRule, cover, area []float32) {
	if rule == NonZero {
		integrateNonZero(cover, area)
	} else {
		integrateEvenOdd(cover, area)
	}
}

// integrateNonZero converts cover/area to coverage using the nonzero
// winding rule. The cover slice is overwritten with the result.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd converts cover/area to coverage using the even-odd
// rule. The cover slice is overwritten with the result.
func integrateEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := abs32(accum + area[i])
		accum += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset,
// or nil if all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}
