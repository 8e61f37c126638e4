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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Flatten converts p into polylines in plane coordinates, one per subpath.
// Curves are replaced by line segments such that the error, measured
// after applying the CTM, is at most Flatness. A closed subpath ends with
// a copy of its first point. Subpaths consisting of a single point are
// returned with length 1.
func (r *Rasterizer) Flatten(p *path.Data) [][]vec.Vec2 {
	var res [][]vec.Vec2
	var cur []vec.Vec2

	var current vec.Vec2 // current point (path space)
	var subpath vec.Vec2 // subpath start (path space)
	emit := func(_, to vec.Vec2) {
		cur = append(cur, r.apply(to))
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if len(cur) > 0 {
				res = append(res, cur)
			}
			current = p.Coords[coordIdx]
			subpath = current
			cur = []vec.Vec2{r.apply(current)}
			coordIdx++

		case path.CmdLineTo:
			emit(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], emit)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], emit)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				emit(current, subpath)
			}
			current = subpath
		}
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}

// apply maps a point from path space to plane space.
func (r *Rasterizer) apply(p vec.Vec2) vec.Vec2 {
	return Transform(r.CTM, p)
}

// Transform applies the affine map m to p.
func Transform(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// transformLinear applies only the 2×2 linear part of the CTM to a vector.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens the quadratic Bézier curve p0, p1, p2 and calls
// emit for each line segment. All points are in path space.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens the cubic Bézier curve p0, p1, p2, p3 and calls
// emit for each line segment. The segment count follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	mDev := max(d1.Length(), d2.Length())
	n := 1
	if mDev > 0 {
		nFloat := math.Sqrt(3 * mDev / (4 * r.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
