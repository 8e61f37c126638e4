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

package job

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/annotensor"
	"seehuhn.de/go/annotensor/tensor"
)

const yamlJob = `
shape: {batch: 1, channels: 3, height: 10, width: 10}
dtype: float32
annotations:
  - encoder: Mask2DEncoder
    source: {width: 10, height: 10}
    config: {channel: 0, height: 10, width: 10, mode: binary}
    pixels: [[2, 3], [5, 5], [8, 1]]
  - encoder: Point2DEncoder
    source: {width: 20, height: 20}
    config: {channel: 1, mode: heatmap, sigma: 1.5}
    points: [[10, 10]]
  - encoder: Line2DEncoder
    source: {width: 10, height: 10}
    config: {channel: 2, height: 10, width: 10, mode: binary}
    polyline: [[0, 0], [4, 0]]
`

const jsonJob = `{
  "shape": {"batch": 1, "channels": 3, "height": 10, "width": 10},
  "dtype": "float32",
  "annotations": [
    {
      "encoder": "Mask2DEncoder",
      "source": {"width": 10, "height": 10},
      "config": {"channel": 0, "height": 10, "width": 10, "mode": "binary"},
      "pixels": [[2, 3], [5, 5], [8, 1]]
    },
    {
      "encoder": "Point2DEncoder",
      "source": {"width": 20, "height": 20},
      "config": {"channel": 1, "mode": "heatmap", "sigma": 1.5},
      "points": [[10.0, 10.0]]
    },
    {
      "encoder": "Line2DEncoder",
      "source": {"width": 10, "height": 10},
      "config": {"channel": 2, "height": 10, "width": 10, "mode": "binary"},
      "polyline": [[0.0, 0.0], [4.0, 0.0]]
    }
  ]
}`

const tomlJob = `
dtype = "float32"

[shape]
batch = 1
channels = 3
height = 10
width = 10

[[annotations]]
encoder = "Mask2DEncoder"
source = { width = 10, height = 10 }
config = { channel = 0, height = 10, width = 10, mode = "binary" }
pixels = [[2, 3], [5, 5], [8, 1]]

[[annotations]]
encoder = "Point2DEncoder"
source = { width = 20, height = 20 }
config = { channel = 1, mode = "heatmap", sigma = 1.5 }
points = [[10.0, 10.0]]

[[annotations]]
encoder = "Line2DEncoder"
source = { width = 10, height = 10 }
config = { channel = 2, height = 10, width = 10, mode = "binary" }
polyline = [[0.0, 0.0], [4.0, 0.0]]
`

func TestParseFormats(t *testing.T) {
	want, err := Parse([]byte(yamlJob), YAML)
	require.NoError(t, err)
	require.Len(t, want.Annotations, 3)
	require.Equal(t, annotensor.Heatmap, want.Annotations[1].Config.Mode)
	require.Equal(t, 1.5, want.Annotations[1].Config.GaussianSigma)
	require.Equal(t, [][2]int{{2, 3}, {5, 5}, {8, 1}}, want.Annotations[0].Pixels)

	for _, tc := range []struct {
		name   string
		data   string
		format Format
	}{
		{"json", jsonJob, JSON},
		{"toml", tomlJob, TOML},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.data), tc.format)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestRun(t *testing.T) {
	j, err := Parse([]byte(yamlJob), YAML)
	require.NoError(t, err)

	dst, err := j.Run()
	require.NoError(t, err)
	require.Equal(t, [4]int{1, 3, 10, 10}, dst.Shape())

	// pixel mask
	require.Equal(t, 1.0, dst.At(0, 0, 3, 2))
	require.Equal(t, 1.0, dst.At(0, 0, 5, 5))
	require.Equal(t, 1.0, dst.At(0, 0, 1, 8))

	// heatmap, output size taken from the tensor
	require.InDelta(t, 1.0, dst.At(0, 1, 5, 5), 1e-6)
	require.Less(t, dst.At(0, 1, 5, 7), 1.0)

	// line
	for x := range 5 {
		require.Equal(t, 1.0, dst.At(0, 2, 0, x))
	}
	require.Zero(t, dst.At(0, 2, 0, 5))
}

func TestRunPath(t *testing.T) {
	data := `
shape: {batch: 1, channels: 1, height: 8, width: 8}
annotations:
  - encoder: Line2DEncoder
    source: {width: 8, height: 8}
    config: {mode: binary}
    path:
      - {cmd: M, pts: [[1, 1]]}
      - {cmd: L, pts: [[6, 1]]}
      - {cmd: L, pts: [[6, 6]]}
      - {cmd: Z}
`
	j, err := Parse([]byte(data), YAML)
	require.NoError(t, err)
	dst, err := j.Run()
	require.NoError(t, err)

	require.Equal(t, 1.0, dst.At(0, 0, 1, 1))
	require.Equal(t, 1.0, dst.At(0, 0, 1, 6))
	require.Equal(t, 1.0, dst.At(0, 0, 6, 6))
	require.Equal(t, 1.0, dst.At(0, 0, 3, 3)) // closing diagonal
	require.Zero(t, dst.At(0, 0, 6, 1))
}

func TestRunPolygon(t *testing.T) {
	data := `
shape: {batch: 1, channels: 1, height: 8, width: 8}
annotations:
  - encoder: Mask2DEncoder
    source: {width: 8, height: 8}
    config: {mode: binary}
    polygon: [[[0.5, 0.5], [4.5, 0.5], [4.5, 2.5], [0.5, 2.5]]]
`
	j, err := Parse([]byte(data), YAML)
	require.NoError(t, err)
	dst, err := j.Run()
	require.NoError(t, err)

	n := 0
	for _, v := range dst.Float32() {
		if v != 0 {
			n++
		}
	}
	require.Equal(t, 4*2, n)
	require.Equal(t, 1.0, dst.At(0, 0, 1, 1))
	require.Equal(t, 1.0, dst.At(0, 0, 2, 4))
}

func TestRunImageFile(t *testing.T) {
	dir := t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := range 2 {
		for x := range 4 {
			img.Set(x, y, color.RGBA{R: uint8(60 * x), G: 100, B: uint8(200 * y), A: 255})
		}
	}
	fd, err := os.Create(filepath.Join(dir, "in.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(fd, img))
	require.NoError(t, fd.Close())

	data := `
shape: {batch: 1, channels: 3, height: 2, width: 4}
dtype: uint8
annotations:
  - encoder: ImageEncoder
    image: {file: in.png}
`
	jobFile := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(jobFile, []byte(data), 0o644))

	j, err := Load(jobFile)
	require.NoError(t, err)
	dst, err := j.Run()
	require.NoError(t, err)
	require.Equal(t, tensor.Uint8, dst.DType())

	require.Equal(t, []uint8{0, 60, 120, 180, 0, 60, 120, 180}, dst.BytePlane(0, 0).Pix)
	require.Equal(t, []uint8{100, 100, 100, 100, 100, 100, 100, 100}, dst.BytePlane(0, 1).Pix)
	require.Equal(t, []uint8{0, 0, 0, 0, 200, 200, 200, 200}, dst.BytePlane(0, 2).Pix)
}

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.Pix = []uint8{0, 128, 255}

	got, size := FromImage(img, true)
	require.Equal(t, annotensor.SourceSize{Width: 3, Height: 1}, size)
	require.Equal(t, 1, got.Channels)
	require.Equal(t, []uint8{0, 128, 255}, got.Pix)

	rgb := image.NewRGBA(image.Rect(0, 0, 2, 1))
	copy(rgb.Pix, []uint8{100, 200, 50, 255, 255, 255, 255, 255})
	got, _ = FromImage(rgb, true)
	require.Equal(t, []uint8{153, 255}, got.Pix)

	got, _ = FromImage(rgb, false)
	require.Equal(t, []uint8{100, 200, 50, 255, 255, 255}, got.Pix)
}

func TestRunErrors(t *testing.T) {
	base := `
shape: {batch: 1, channels: 1, height: 4, width: 4}
annotations:
  - encoder: Point2DEncoder
    source: {width: 4, height: 4}
    config: {mode: binary}
    points: [[1, 1]]
`
	type testCase struct {
		name  string
		extra string
		index int
		want  error
	}
	cases := []testCase{
		{
			name: "unsupported_mode",
			extra: `
  - encoder: Mask2DEncoder
    source: {width: 4, height: 4}
    config: {mode: heatmap, sigma: 1}
    pixels: [[1, 1]]
`,
			index: 1,
			want:  annotensor.ErrInvalidArgument,
		},
		{
			name: "no_geometry",
			extra: `
  - encoder: Point2DEncoder
    source: {width: 4, height: 4}
`,
			index: 1,
			want:  ErrInvalidJob,
		},
		{
			name: "two_geometries",
			extra: `
  - encoder: Point2DEncoder
    source: {width: 4, height: 4}
    points: [[1, 1]]
    pixels: [[1, 1]]
`,
			index: 1,
			want:  ErrInvalidJob,
		},
		{
			name: "bad_path",
			extra: `
  - encoder: Line2DEncoder
    source: {width: 4, height: 4}
    path: [{cmd: L, pts: [[1, 1]]}]
`,
			index: 1,
			want:  ErrInvalidJob,
		},
		{
			name: "nan_point",
			extra: `
  - encoder: Point2DEncoder
    source: {width: 4, height: 4}
    config: {mode: binary}
    points: [[2, .nan]]
`,
			index: 1,
			want:  annotensor.ErrInvalidArgument,
		},
		{
			name: "size_mismatch",
			extra: `
  - encoder: ImageEncoder
    source: {width: 2, height: 2}
    image: {channels: 1, pix: [1, 2, 3]}
`,
			index: 1,
			want:  annotensor.ErrSizeMismatch,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j, err := Parse([]byte(base+tc.extra), YAML)
			require.NoError(t, err)

			dst, err := j.NewTensor()
			require.NoError(t, err)
			err = j.RunInto(dst)

			var annErr *AnnotationError
			require.ErrorAs(t, err, &annErr)
			require.Equal(t, tc.index, annErr.Index)
			require.ErrorIs(t, err, tc.want)

			// the annotations before the failing one have been written
			require.Equal(t, 1.0, dst.At(0, 0, 1, 1))
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad_shape":     `shape: {batch: 0, channels: 1, height: 4, width: 4}`,
		"bad_dtype":     "shape: {batch: 1, channels: 1, height: 4, width: 4}\ndtype: int64",
		"bad_encoder":   "shape: {batch: 1, channels: 1, height: 4, width: 4}\nannotations: [{encoder: Box3D}]",
		"unknown_field": "shape: {batch: 1, channels: 1, height: 4, width: 4}\ncolour: red",
		"bad_mode":      "shape: {batch: 1, channels: 1, height: 4, width: 4}\nannotations: [{encoder: Point2DEncoder, config: {mode: fuzzy}}]",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data), YAML)
			require.ErrorIs(t, err, ErrInvalidJob)
		})
	}
}

func TestFormatOf(t *testing.T) {
	for name, want := range map[string]Format{
		"a.yaml": YAML,
		"b.YML":  YAML,
		"c.json": JSON,
		"d.toml": TOML,
	} {
		got, err := FormatOf(name)
		require.NoError(t, err)
		require.Equal(t, want, got, name)
	}
	_, err := FormatOf("job.txt")
	require.ErrorIs(t, err, ErrInvalidJob)
}
