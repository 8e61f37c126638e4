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

package annotensor_test

import (
	"errors"
	"image"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/annotensor"
	"seehuhn.de/go/annotensor/tensor"
	"seehuhn.de/go/annotensor/testcases"
)

func TestAllCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				dst, err := tc.Encode()
				require.NoError(t, err)
				checkRegion(t, tc, dst)
				checkRange(t, tc, dst)

				// encoding the same annotation again changes nothing
				again := dst.Clone()
				enc, _ := annotensor.New(tc.Encoder)
				require.NoError(t, enc.Encode(tc.Geometry, tc.Source, again, tc.Config))
				require.Equal(t, dst.Float32(), again.Float32())
				require.Equal(t, dst.Uint8(), again.Uint8())
			})
		}
	}
}

func TestLargeCases(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large outputs in short mode")
	}
	for _, tc := range testcases.Large {
		t.Run(tc.Name, func(t *testing.T) {
			dst, err := tc.Encode()
			require.NoError(t, err)
			checkRegion(t, tc, dst)
			checkRange(t, tc, dst)
		})
	}
}

func TestUnknownEncoder(t *testing.T) {
	tc := testcases.TestCase{Name: "unknown", Encoder: "Box3DEncoder"}
	_, err := tc.Encode()
	var unknown *testcases.UnknownEncoderError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "Box3DEncoder", unknown.Name)
}

// checkRegion verifies that nothing outside the target planes was written.
// The image encoder may write up to three planes, all other encoders
// write one.
func checkRegion(t *testing.T, tc testcases.TestCase, dst *tensor.Tensor) {
	t.Helper()
	planes := 1
	if tc.Encoder == annotensor.ImageEncoderName {
		planes = 3
	}
	for b := range dst.Batch() {
		for c := range dst.Channels() {
			inside := b == tc.Config.TargetBatch &&
				c >= tc.Config.TargetChannel && c < tc.Config.TargetChannel+planes
			if inside {
				continue
			}
			for y := range dst.Height() {
				for x := range dst.Width() {
					require.Zero(t, dst.At(b, c, y, x), "cell (%d,%d,%d,%d)", b, c, y, x)
				}
			}
		}
	}
}

// checkRange verifies the value range of the output.
func checkRange(t *testing.T, tc testcases.TestCase, dst *tensor.Tensor) {
	t.Helper()
	if dst.DType() != tensor.Float32 {
		return
	}
	if tc.Encoder == annotensor.ImageEncoderName && !tc.Config.Normalize {
		return
	}
	binary := tc.Encoder != annotensor.ImageEncoderName && tc.Config.Mode == annotensor.Binary
	for i, v := range dst.Float32() {
		if binary {
			require.True(t, v == 0 || v == 1, "element %d = %g", i, v)
		} else {
			require.True(t, v >= 0 && v <= 1+1e-6, "element %d = %g", i, v)
		}
	}
}

// TestAgainstReference compares polygon masks with the images rendered by
// testcases/genpdf. Reference images are not checked in; the test is
// skipped if they are missing.
func TestAgainstReference(t *testing.T) {
	for _, tc := range testcases.All["polygon"] {
		name := "polygon_" + tc.Name
		t.Run(name, func(t *testing.T) {
			ref, err := loadGray(filepath.Join("testdata", "reference", name+".png"))
			if errors.Is(err, fs.ErrNotExist) {
				t.Skip("no reference image, run testcases/genpdf first")
			}
			require.NoError(t, err)

			dst, err := tc.Encode()
			require.NoError(t, err)
			require.Equal(t, dst.Width(), ref.Bounds().Dx())
			require.Equal(t, dst.Height(), ref.Bounds().Dy())

			// Ghostscript anti-aliases edges, so cells on the boundary
			// may go either way.
			diff := 0
			for y := range dst.Height() {
				for x := range dst.Width() {
					inRef := ref.GrayAt(x, y).Y >= 128
					inMask := dst.At(0, 0, y, x) == 1
					if inRef != inMask {
						diff++
					}
				}
			}
			limit := dst.Width() * dst.Height() / 50
			require.LessOrEqual(t, diff, limit, "%d cells differ", diff)
		})
	}
}

func loadGray(name string) (*image.Gray, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	if gray, ok := img.(*image.Gray); ok {
		return gray, nil
	}
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}
	return gray, nil
}
