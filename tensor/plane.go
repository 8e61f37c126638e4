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

package tensor

// Elem lists the element types a Plane can hold.
type Elem interface {
	~float32 | ~uint8
}

// Plane is a two-dimensional view into a tensor, or a standalone image
// channel. Element (x, y) is stored at Pix[y*Stride+x].
type Plane[T Elem] struct {
	Pix    []T
	Width  int
	Height int
	Stride int
}

// NewPlane allocates a zero-filled plane.
func NewPlane[T Elem](width, height int) Plane[T] {
	return Plane[T]{
		Pix:    make([]T, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// At returns the value at column x, row y.
func (p Plane[T]) At(x, y int) T {
	return p.Pix[y*p.Stride+x]
}

// Set stores v at column x, row y.
func (p Plane[T]) Set(x, y int, v T) {
	p.Pix[y*p.Stride+x] = v
}

// Max stores the larger of v and the current value at column x, row y.
func (p Plane[T]) Max(x, y int, v T) {
	i := y*p.Stride + x
	p.Pix[i] = max(p.Pix[i], v)
}

// Row returns the first n elements of row y.
func (p Plane[T]) Row(y, n int) []T {
	off := y * p.Stride
	return p.Pix[off : off+n]
}

// Sub returns the view restricted to the top-left width×height corner.
func (p Plane[T]) Sub(width, height int) Plane[T] {
	if width > p.Width || height > p.Height {
		panic("tensor: sub-plane larger than plane")
	}
	return Plane[T]{Pix: p.Pix, Width: width, Height: height, Stride: p.Stride}
}
