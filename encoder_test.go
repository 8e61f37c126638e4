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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor/tensor"
)

func TestNonFiniteCoordinates(t *testing.T) {
	src := SourceSize{Width: 8, Height: 8}
	bad := []vec.Vec2{
		{X: math.NaN(), Y: 2},
		{X: 2, Y: math.NaN()},
		{X: math.Inf(1), Y: 2},
		{X: 2, Y: math.Inf(-1)},
	}
	modes := []RasterMode{Binary, Heatmap}

	for _, p := range bad {
		good := vec.Vec2{X: 1, Y: 1}
		geoms := []struct {
			name  string
			enc   Encoder
			g     Geometry
			modes []RasterMode
		}{
			{"points", &PointEncoder{}, Points{good, p}, modes},
			{"polyline", &LineEncoder{}, Polyline{good, p, good}, modes},
			{"path", &LineEncoder{}, Path{(&path.Data{}).MoveTo(good).LineTo(p)}, modes},
			{"polygon", &MaskEncoder{}, Polygon{{good, {X: 6, Y: 1}, p}}, []RasterMode{Binary}},
		}
		for _, tc := range geoms {
			for _, mode := range tc.modes {
				dst := tensor.New(tensor.Float32, 1, 1, 8, 8)
				cfg := Config{OutHeight: 8, OutWidth: 8, Mode: mode, GaussianSigma: 1}
				var err error
				require.NotPanics(t, func() {
					err = tc.enc.Encode(tc.g, src, dst, cfg)
				}, "%s %s %v", tc.name, mode, p)
				require.ErrorIs(t, err, ErrInvalidArgument, "%s %s %v", tc.name, mode, p)
				requireZero(t, dst)
			}
		}
	}
}
