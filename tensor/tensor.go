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

// Package tensor implements the four-axis numeric buffer that annotations
// are encoded into.
//
// A Tensor is addressed as [batch, channel, row, column] and stored in
// row-major order. The element type is either float32 or uint8. Encoders
// never allocate or resize a tensor; they write into a sub-region which is
// described by a [Region] and validated before the first write.
package tensor

import (
	"errors"
	"fmt"
)

// DType is the element type of a tensor.
type DType uint8

// These are the supported element types.
const (
	Float32 DType = iota
	Uint8
)

func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Uint8:
		return "uint8"
	default:
		return fmt.Sprintf("DType(%d)", int(d))
	}
}

// ParseDType converts "float32" or "uint8" to a DType.
func ParseDType(s string) (DType, error) {
	switch s {
	case "float32", "float", "f32":
		return Float32, nil
	case "uint8", "u8", "byte":
		return Uint8, nil
	}
	return 0, fmt.Errorf("unknown dtype %q", s)
}

// Tensor is a dense [batch, channel, row, column] buffer.
type Tensor struct {
	shape [4]int
	dtype DType

	f32 []float32
	u8  []uint8
}

// New allocates a zero-filled tensor of the given type and shape.
// All dimensions must be positive.
func New(dtype DType, batch, channels, height, width int) *Tensor {
	if batch <= 0 || channels <= 0 || height <= 0 || width <= 0 {
		panic(fmt.Sprintf("tensor: invalid shape [%d %d %d %d]", batch, channels, height, width))
	}
	t := &Tensor{
		shape: [4]int{batch, channels, height, width},
		dtype: dtype,
	}
	n := batch * channels * height * width
	switch dtype {
	case Float32:
		t.f32 = make([]float32, n)
	case Uint8:
		t.u8 = make([]uint8, n)
	default:
		panic("tensor: unsupported dtype " + dtype.String())
	}
	return t
}

// Shape returns the tensor dimensions as [batch, channels, height, width].
func (t *Tensor) Shape() [4]int { return t.shape }

// DType returns the element type.
func (t *Tensor) DType() DType { return t.dtype }

// Batch returns the number of batch slots.
func (t *Tensor) Batch() int { return t.shape[0] }

// Channels returns the number of channels per batch slot.
func (t *Tensor) Channels() int { return t.shape[1] }

// Height returns the number of rows.
func (t *Tensor) Height() int { return t.shape[2] }

// Width returns the number of columns.
func (t *Tensor) Width() int { return t.shape[3] }

// Float32 returns the backing slice of a float32 tensor, or nil.
func (t *Tensor) Float32() []float32 { return t.f32 }

// Uint8 returns the backing slice of a uint8 tensor, or nil.
func (t *Tensor) Uint8() []uint8 { return t.u8 }

// offset returns the index of element (b, c, 0, 0).
func (t *Tensor) offset(b, c int) int {
	if b < 0 || b >= t.shape[0] || c < 0 || c >= t.shape[1] {
		panic(fmt.Sprintf("tensor: plane (%d, %d) out of range for shape %v", b, c, t.shape))
	}
	return (b*t.shape[1] + c) * t.shape[2] * t.shape[3]
}

// At returns element (b, c, y, x) converted to float64.
func (t *Tensor) At(b, c, y, x int) float64 {
	if y < 0 || y >= t.shape[2] || x < 0 || x >= t.shape[3] {
		panic(fmt.Sprintf("tensor: cell (%d, %d) out of range for shape %v", y, x, t.shape))
	}
	i := t.offset(b, c) + y*t.shape[3] + x
	if t.dtype == Uint8 {
		return float64(t.u8[i])
	}
	return float64(t.f32[i])
}

// Plane returns a view of channel c in batch slot b of a float32 tensor.
// Writes through the view modify the tensor.
func (t *Tensor) Plane(b, c int) Plane[float32] {
	if t.dtype != Float32 {
		panic("tensor: Plane called on " + t.dtype.String() + " tensor")
	}
	off := t.offset(b, c)
	h, w := t.shape[2], t.shape[3]
	return Plane[float32]{Pix: t.f32[off : off+h*w], Width: w, Height: h, Stride: w}
}

// BytePlane returns a view of channel c in batch slot b of a uint8 tensor.
func (t *Tensor) BytePlane(b, c int) Plane[uint8] {
	if t.dtype != Uint8 {
		panic("tensor: BytePlane called on " + t.dtype.String() + " tensor")
	}
	off := t.offset(b, c)
	h, w := t.shape[2], t.shape[3]
	return Plane[uint8]{Pix: t.u8[off : off+h*w], Width: w, Height: h, Stride: w}
}

// Clone returns a deep copy of t.
func (t *Tensor) Clone() *Tensor {
	res := &Tensor{shape: t.shape, dtype: t.dtype}
	if t.f32 != nil {
		res.f32 = append([]float32(nil), t.f32...)
	}
	if t.u8 != nil {
		res.u8 = append([]uint8(nil), t.u8...)
	}
	return res
}

// ErrRegion is returned when a write region does not fit into a tensor.
var ErrRegion = errors.New("write region outside tensor")

// Region describes the part of a tensor an encoder writes to:
// channels [Channel, Channel+Channels) of batch slot Batch, restricted to
// rows [0, Height) and columns [0, Width).
type Region struct {
	Batch    int
	Channel  int
	Channels int
	Height   int
	Width    int
}

// Check verifies that r lies inside t.
func (t *Tensor) Check(r Region) error {
	switch {
	case r.Batch < 0 || r.Batch >= t.shape[0]:
		return fmt.Errorf("%w: batch %d not in [0,%d)", ErrRegion, r.Batch, t.shape[0])
	case r.Channel < 0 || r.Channel >= t.shape[1]:
		return fmt.Errorf("%w: channel %d not in [0,%d)", ErrRegion, r.Channel, t.shape[1])
	case r.Channels < 1 || r.Channel+r.Channels > t.shape[1]:
		return fmt.Errorf("%w: channels [%d,%d) exceed %d",
			ErrRegion, r.Channel, r.Channel+r.Channels, t.shape[1])
	case r.Height <= 0 || r.Height > t.shape[2]:
		return fmt.Errorf("%w: height %d not in (0,%d]", ErrRegion, r.Height, t.shape[2])
	case r.Width <= 0 || r.Width > t.shape[3]:
		return fmt.Errorf("%w: width %d not in (0,%d]", ErrRegion, r.Width, t.shape[3])
	}
	return nil
}
