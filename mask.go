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
	"log/slog"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor/raster"
	"seehuhn.de/go/annotensor/tensor"
)

// MaskEncoder draws binary masks given as pixel sets or polygons.
// Only Binary mode is supported.
type MaskEncoder struct{}

// Name returns "Mask2DEncoder".
func (*MaskEncoder) Name() string { return MaskEncoderName }

// Kind returns KindPixelSet.
func (*MaskEncoder) Kind() Kind { return KindPixelSet }

// Encode implements the [Encoder] interface. The geometry must be
// a [PixelSet] or a [Polygon].
func (e *MaskEncoder) Encode(g Geometry, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	switch g := g.(type) {
	case PixelSet:
		return e.EncodePixels(g, src, dst, cfg)
	case Polygon:
		return e.EncodePolygon(g, src, dst, cfg)
	}
	return wrongGeometry(e, g)
}

// EncodePixels sets the output cell of every pixel to 1. Pixel
// coordinates are scaled, rounded to the nearest cell and clamped into
// the output. An empty set leaves the tensor unchanged.
func (e *MaskEncoder) EncodePixels(pixels PixelSet, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	err := checkGeometric(e.Name(), src, dst, cfg, Binary)
	if err != nil {
		return err
	}
	if len(pixels) == 0 {
		Logger().Debug("empty pixel set")
		return nil
	}

	r := cfg.rasterizer()
	plane := dst.Plane(cfg.TargetBatch, cfg.TargetChannel)
	m := scaleMatrix(src, cfg.OutHeight, cfg.OutWidth)
	for _, px := range pixels {
		r.Dot(plane, raster.Transform(m, vec.Vec2{X: float64(px.X), Y: float64(px.Y)}))
	}
	return nil
}

// EncodePolygon sets every output cell to 1 which is at least half covered
// by the scaled polygon. Rings with fewer than three vertices are ignored.
func (e *MaskEncoder) EncodePolygon(poly Polygon, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	err := checkGeometric(e.Name(), src, dst, cfg, Binary)
	if err != nil {
		return err
	}

	for _, ring := range poly {
		if err := checkFinite(e.Name(), ring); err != nil {
			return err
		}
	}

	m := scaleMatrix(src, cfg.OutHeight, cfg.OutWidth)
	rings := make([][]vec.Vec2, 0, len(poly))
	for _, ring := range poly {
		if len(ring) < 3 {
			Logger().Debug("skipping degenerate ring", slog.Int("points", len(ring)))
			continue
		}
		scaled := make([]vec.Vec2, len(ring))
		for i, p := range ring {
			scaled[i] = raster.Transform(m, p)
		}
		rings = append(rings, scaled)
	}
	if len(rings) == 0 {
		return nil
	}

	r := cfg.rasterizer()
	r.FillMask(dst.Plane(cfg.TargetBatch, cfg.TargetChannel), rings, raster.NonZero, polygonThreshold)
	return nil
}

// polygonThreshold is the coverage at which a cell counts as inside
// a polygon.
const polygonThreshold = 0.5
