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

// LineEncoder draws polylines. In Binary mode segments are drawn with
// Bresenham's algorithm, in Heatmap mode as Gaussian ridges whose value
// depends on the distance to the segment.
type LineEncoder struct{}

// Name returns "Line2DEncoder".
func (*LineEncoder) Name() string { return LineEncoderName }

// Kind returns KindPolyline.
func (*LineEncoder) Kind() Kind { return KindPolyline }

// Encode implements the [Encoder] interface. The geometry must be
// a [Polyline] or a [Path].
func (e *LineEncoder) Encode(g Geometry, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	switch g := g.(type) {
	case Polyline:
		return e.EncodePolyline(g, src, dst, cfg)
	case Path:
		return e.EncodePath(g, src, dst, cfg)
	}
	return wrongGeometry(e, g)
}

// EncodePolyline draws the segments between consecutive points of line.
// Lines with fewer than two points leave the tensor unchanged.
//
// In Binary mode, both endpoints of each segment are rounded and clamped
// into the output before drawing. Segments crossing the border are
// therefore drawn towards the clamped endpoint rather than clipped.
// In Heatmap mode the segments are max-combined, so that joints and
// crossings are not counted twice.
func (e *LineEncoder) EncodePolyline(line Polyline, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	err := checkGeometric(e.Name(), src, dst, cfg, Binary, Heatmap)
	if err != nil {
		return err
	}
	if err := checkFinite(e.Name(), line); err != nil {
		return err
	}
	if len(line) < 2 {
		Logger().Debug("skipping degenerate polyline", slog.Int("points", len(line)))
		return nil
	}

	m := scaleMatrix(src, cfg.OutHeight, cfg.OutWidth)
	scaled := make([]vec.Vec2, len(line))
	for i, p := range line {
		scaled[i] = raster.Transform(m, p)
	}
	drawPolyline(cfg.rasterizer(), dst.Plane(cfg.TargetBatch, cfg.TargetChannel), scaled, cfg.Mode)
	return nil
}

// EncodePath flattens p and draws the resulting polylines like
// EncodePolyline does. Curves are approximated to within a quarter of an
// output cell. Closed subpaths include the closing segment.
func (e *LineEncoder) EncodePath(p Path, src SourceSize, dst *tensor.Tensor, cfg Config) error {
	err := checkGeometric(e.Name(), src, dst, cfg, Binary, Heatmap)
	if err != nil {
		return err
	}
	if p.Data == nil {
		Logger().Debug("skipping empty path")
		return nil
	}
	if err := checkFinite(e.Name(), p.Data.Coords); err != nil {
		return err
	}

	r := cfg.rasterizer()
	r.CTM = scaleMatrix(src, cfg.OutHeight, cfg.OutWidth)
	plane := dst.Plane(cfg.TargetBatch, cfg.TargetChannel)
	for _, line := range r.Flatten(p.Data) {
		if len(line) < 2 {
			Logger().Debug("skipping degenerate subpath")
			continue
		}
		drawPolyline(r, plane, line, cfg.Mode)
	}
	return nil
}

// drawPolyline draws a polyline given in output coordinates.
func drawPolyline(r *raster.Rasterizer, plane tensor.Plane[float32], line []vec.Vec2, mode RasterMode) {
	for i := 1; i < len(line); i++ {
		if mode == Heatmap {
			r.GaussianLine(plane, line[i-1], line[i])
		} else {
			r.Line(plane, line[i-1], line[i])
		}
	}
}
