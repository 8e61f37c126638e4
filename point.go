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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor/raster"
	"seehuhn.de/go/annotensor/tensor"
)

// PointEncoder draws points, either as single cells (Binary mode) or as
// Gaussian blobs (Heatmap mode).
type PointEncoder struct{}

// Name returns "Point2DEncoder".
func (*PointEncoder) Name() string { return PointEncoderName }

// Kind returns KindPoint.
func (*PointEncoder) Kind() Kind { return KindPoint }

// Encode implements the [Encoder] interface. The geometry must be
// of type [Points].
func (e *PointEncoder) Encode(g Geometry, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	pts, ok := g.(Points)
	if !ok {
		return wrongGeometry(e, g)
	}
	return e.EncodePoints(pts, src, dst, cfg)
}

// EncodePoint draws a single point.
func (e *PointEncoder) EncodePoint(p vec.Vec2, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	return e.EncodePoints(Points{p}, src, dst, cfg)
}

// EncodePoints draws each point in turn.
//
// In Binary mode, the cell nearest to the scaled point is set to 1; points
// outside the output are moved to the nearest border cell. In Heatmap mode,
// a Gaussian centred on the unrounded scaled point is max-combined with
// the existing values, so the order of points does not matter.
func (e *PointEncoder) EncodePoints(pts Points, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	err := checkGeometric(e.Name(), src, dst, cfg, Binary, Heatmap)
	if err != nil {
		return err
	}
	if err := checkFinite(e.Name(), pts); err != nil {
		return err
	}

	r := cfg.rasterizer()
	plane := dst.Plane(cfg.TargetBatch, cfg.TargetChannel)
	m := scaleMatrix(src, cfg.OutHeight, cfg.OutWidth)
	for _, p := range pts {
		q := raster.Transform(m, p)
		if cfg.Mode == Heatmap {
			r.GaussianDot(plane, q)
		} else {
			r.Dot(plane, q)
		}
	}
	return nil
}
