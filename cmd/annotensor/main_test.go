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

package main

import (
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/annotensor/tensor"
)

func TestPlaneImage(t *testing.T) {
	dst := tensor.New(tensor.Float32, 1, 2, 1, 4)
	copy(dst.Plane(0, 1).Pix, []float32{-1, 0.5, 1, 7})

	img := planeImage(dst, 0, 1)
	require.Equal(t, []uint8{0, 128, 255, 255}, img.Pix)
	require.Equal(t, []uint8{0, 0, 0, 0}, planeImage(dst, 0, 0).Pix)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	jobFile := filepath.Join(dir, "job.toml")
	data := `
[shape]
batch = 1
channels = 2
height = 4
width = 4

[[annotations]]
encoder = "Point2DEncoder"
source = { width = 4, height = 4 }
config = { channel = 1, mode = "binary" }
points = [[1.0, 2.0]]
`
	require.NoError(t, os.WriteFile(jobFile, []byte(data), 0o644))

	outDir := filepath.Join(dir, "out")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, run(jobFile, outDir, 3, logger))

	for _, name := range []string{"plane_0_0.png", "plane_0_1.png"} {
		require.FileExists(t, filepath.Join(outDir, name))
	}

	fd, err := os.Open(filepath.Join(outDir, "plane_0_1.png"))
	require.NoError(t, err)
	defer fd.Close()
	img, err := png.Decode(fd)
	require.NoError(t, err)
	require.Equal(t, 12, img.Bounds().Dx())
	require.Equal(t, 12, img.Bounds().Dy())

	// cell (x=1, y=2) covers pixels [3, 6) × [6, 9) after zooming
	r, _, _, _ := img.At(4, 7).RGBA()
	require.Equal(t, uint32(0xffff), r)
	r, _, _, _ = img.At(0, 0).RGBA()
	require.Zero(t, r)
}
