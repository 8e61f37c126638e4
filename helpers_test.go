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
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/annotensor/tensor"
)

// cell is a (row, column) pair.
type cell struct{ row, col int }

// requireOnly checks that exactly the given cells of plane (b, c) are 1 and
// that all other values in the whole tensor are 0.
func requireOnly(t *testing.T, dst *tensor.Tensor, b, c int, cells ...cell) {
	t.Helper()
	want := make(map[cell]bool, len(cells))
	for _, x := range cells {
		want[x] = true
	}
	shape := dst.Shape()
	for bb := range shape[0] {
		for cc := range shape[1] {
			for y := range shape[2] {
				for x := range shape[3] {
					v := dst.At(bb, cc, y, x)
					if bb == b && cc == c && want[cell{y, x}] {
						require.Equal(t, 1.0, v, "cell (%d,%d,%d,%d)", bb, cc, y, x)
					} else {
						require.Equal(t, 0.0, v, "cell (%d,%d,%d,%d)", bb, cc, y, x)
					}
				}
			}
		}
	}
}

// countSet returns the number of non-zero values in plane (b, c).
func countSet(dst *tensor.Tensor, b, c int) int {
	n := 0
	for _, v := range dst.Plane(b, c).Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

func requireZero(t *testing.T, dst *tensor.Tensor) {
	t.Helper()
	for i, v := range dst.Float32() {
		require.Zero(t, v, "element %d", i)
	}
	for i, v := range dst.Uint8() {
		require.Zero(t, v, "element %d", i)
	}
}
