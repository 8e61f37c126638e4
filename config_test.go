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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor/tensor"
)

func TestScale(t *testing.T) {
	cases := []struct {
		p          vec.Vec2
		src        SourceSize
		outH, outW int
		want       vec.Vec2
	}{
		{vec.Vec2{X: 10, Y: 20}, SourceSize{Width: 100, Height: 100}, 50, 50, vec.Vec2{X: 5, Y: 10}},
		{vec.Vec2{X: 10, Y: 20}, SourceSize{Width: 100, Height: 40}, 20, 50, vec.Vec2{X: 5, Y: 10}},
		{vec.Vec2{X: 3, Y: 3}, SourceSize{Width: 4, Height: 8}, 16, 8, vec.Vec2{X: 6, Y: 6}},
		{vec.Vec2{X: 0, Y: 0}, SourceSize{Width: 7, Height: 3}, 11, 13, vec.Vec2{}},
		{vec.Vec2{X: -2, Y: 150}, SourceSize{Width: 100, Height: 100}, 10, 10, vec.Vec2{X: -0.2, Y: 15}},
	}
	for _, tc := range cases {
		got := Scale(tc.p, tc.src, tc.outH, tc.outW)
		require.InDelta(t, tc.p.X*float64(tc.outW)/float64(tc.src.Width), got.X, 1e-12)
		require.InDelta(t, tc.p.Y*float64(tc.outH)/float64(tc.src.Height), got.Y, 1e-12)
		require.InDelta(t, tc.want.X, got.X, 1e-12)
		require.InDelta(t, tc.want.Y, got.Y, 1e-12)
	}
}

func TestRasterMode(t *testing.T) {
	for _, m := range []RasterMode{Binary, Heatmap, Distance, Raw} {
		text, err := m.MarshalText()
		require.NoError(t, err)

		var back RasterMode
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, m, back)
	}

	m, err := ParseRasterMode("HeatMap")
	require.NoError(t, err)
	require.Equal(t, Heatmap, m)

	_, err = ParseRasterMode("gaussian")
	require.ErrorIs(t, err, ErrInvalidArgument)

	require.Equal(t, "RasterMode(9)", RasterMode(9).String())
}

func TestConfigRegion(t *testing.T) {
	cfg := Config{TargetChannel: 2, TargetBatch: 1, OutHeight: 8, OutWidth: 6}
	require.Equal(t, tensor.Region{Batch: 1, Channel: 2, Channels: 3, Height: 8, Width: 6}, cfg.Region(3))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	dst := tensor.New(tensor.Float32, 1, 1, 4, 4)
	cfg := Config{OutHeight: 4, OutWidth: 4, Mode: Binary}
	err := (&LineEncoder{}).EncodePolyline(Polyline{{X: 1, Y: 1}}, SourceSize{Width: 4, Height: 4}, dst, cfg)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "degenerate polyline")

	SetLogger(nil)
	buf.Reset()
	err = (&LineEncoder{}).EncodePolyline(nil, SourceSize{Width: 4, Height: 4}, dst, cfg)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
