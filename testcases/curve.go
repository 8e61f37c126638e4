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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/annotensor"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:     "quadratic",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: quadraticCurve(10, 50, 32, 10, 54, 50)},
		Config:   out(64, 64),
	},
	{
		Name:     "quadratic_shallow",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: quadraticCurve(10, 32, 32, 28, 54, 32)}, // control point near chord
		Config:   out(64, 64),
	},
	{
		Name:     "cubic",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: cubicCurve(10, 50, 20, 10, 44, 10, 54, 50)},
		Config:   out(64, 64),
	},
	{
		Name:     "cubic_loop",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: cubicCurve(10, 40, 60, 5, 4, 5, 54, 40)}, // self-intersecting
		Config:   out(64, 64),
	},
	{
		Name:     "s_curve",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: sCurveQuadratic(8, 32, 56, 32)},
		Config:   out(64, 64),
	},
	{
		Name:     "circle",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: circle(32, 32, 25).Close()},
		Config:   out(64, 64),
	},
	{
		Name:     "circle_downscaled",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(640, 640),
		Geometry: annotensor.Path{Data: circle(320, 320, 250)},
		Config:   out(64, 64),
	},
	{
		Name:     "ellipse_heatmap",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: ellipse(32, 32, 26, 14)},
		Config:   heat(64, 64, 1.5),
	},
	{
		Name:     "arc",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: arc(32, 32, 22, 0, 0.75)},
		Config:   out(64, 64),
	},
	{
		Name:     "two_subpaths",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: twoCurves(8, 20, 56, 44)},
		Config:   heat(64, 64, 2),
	},
	{
		Name:     "empty",
		Encoder:  annotensor.LineEncoderName,
		Source:   src(64, 64),
		Geometry: annotensor.Path{Data: &path.Data{}},
		Config:   out(64, 64),
	},
}

// quadraticCurve builds an open path with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurve builds an open path with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds an open S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)). // first quadratic curves up
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2))      // second quadratic curves down
}

// twoCurves builds a path with two parallel quadratic subpaths.
func twoCurves(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(midX, y1-12), pt(x2, y1)).
		MoveTo(pt(x1, y2)).
		QuadTo(pt(midX, y2+12), pt(x2, y2))
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).                                   // start at right
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).   // top-right quadrant
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).   // top-left quadrant
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).   // bottom-left quadrant
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy))    // bottom-right quadrant
}

// ellipse builds an approximate closed ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// arc builds a partial circle outline (pie slice) from startFraction to
// endFraction (0-1), counted in whole quadrants starting from the right.
func arc(cx, cy, r float64, startFraction, endFraction float64) *path.Data {
	k := r * kappa

	totalFraction := endFraction - startFraction
	if totalFraction <= 0 {
		return &path.Data{}
	}
	numQuadrants := min(max(int(totalFraction*4), 1), 4)

	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))

	quadrants := [4][3]struct{ x, y float64 }{
		{{cx + r, cy - k}, {cx + k, cy - r}, {cx, cy - r}},
		{{cx - k, cy - r}, {cx - r, cy - k}, {cx - r, cy}},
		{{cx - r, cy + k}, {cx - k, cy + r}, {cx, cy + r}},
		{{cx + k, cy + r}, {cx + r, cy + k}, {cx + r, cy}},
	}
	for _, q := range quadrants[:numQuadrants] {
		p = p.CubeTo(pt(q[0].x, q[0].y), pt(q[1].x, q[1].y), pt(q[2].x, q[2].y))
	}
	return p.Close()
}
