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

package annotensor

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor/raster"
)

// Kind identifies the geometry type an encoder consumes.
type Kind int

// These are the geometry kinds.
const (
	KindImage Kind = iota
	KindPoint
	KindPixelSet
	KindPolyline
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindPoint:
		return "point"
	case KindPixelSet:
		return "pixel set"
	case KindPolyline:
		return "polyline"
	default:
		return "unknown"
	}
}

// Geometry is an annotation which can be passed to [Encoder.Encode].
// The set of implementations is closed: [Points], [Polyline], [Path],
// [PixelSet], [Polygon] and [Image].
type Geometry interface {
	// Kind returns the kind of encoder which accepts the geometry.
	Kind() Kind

	isGeometry()
}

// SourceSize is the size of the image an annotation refers to.
// Annotation coordinates are given in this space.
type SourceSize struct {
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
}

// Points is a list of independent points. A single point is a list of
// length one.
type Points []vec.Vec2

// Polyline is an ordered sequence of points joined by straight segments.
type Polyline []vec.Vec2

// Path is a polyline which may contain Bézier curves and several
// subpaths.
type Path struct {
	*path.Data
}

// Pixel is an integer pixel coordinate in source space.
type Pixel struct {
	X, Y int
}

// PixelSet is an unordered collection of pixels.
// Duplicates are allowed.
type PixelSet []Pixel

// Polygon is an area given by one or more closed rings. Overlapping
// rings are combined with the nonzero winding rule.
type Polygon [][]vec.Vec2

// Image is a raw raster image with interleaved channels in row-major
// order. Exactly one of Pix and Float should be set; Float takes
// precedence. The image size is given separately, as a [SourceSize].
type Image struct {
	Pix      []uint8
	Float    []float32
	Channels int
}

// Len returns the number of values in the image data.
func (img Image) Len() int {
	if img.Float != nil {
		return len(img.Float)
	}
	return len(img.Pix)
}

func (Points) Kind() Kind   { return KindPoint }
func (Polyline) Kind() Kind { return KindPolyline }
func (Path) Kind() Kind     { return KindPolyline }
func (PixelSet) Kind() Kind { return KindPixelSet }
func (Polygon) Kind() Kind  { return KindPixelSet }
func (Image) Kind() Kind    { return KindImage }

func (Points) isGeometry()   {}
func (Polyline) isGeometry() {}
func (Path) isGeometry()     {}
func (PixelSet) isGeometry() {}
func (Polygon) isGeometry()  {}
func (Image) isGeometry()    {}

// Scale maps p from source image space to output space. The two axes are
// scaled independently by outW/src.Width and outH/src.Height, so the
// aspect ratio changes when the output shape differs from the source
// shape. The source size must be non-zero.
func Scale(p vec.Vec2, src SourceSize, outH, outW int) vec.Vec2 {
	return raster.Transform(scaleMatrix(src, outH, outW), p)
}

// scaleMatrix returns the transformation from source space to output
// space.
func scaleMatrix(src SourceSize, outH, outW int) matrix.Matrix {
	return matrix.Scale(float64(outW)/float64(src.Width), float64(outH)/float64(src.Height))
}
