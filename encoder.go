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
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor/tensor"
)

// Encoder writes annotations of one geometry kind into a tensor.
//
// Encode writes g into dst, in the region selected by cfg. Coordinates in
// g refer to an image of size src. The tensor is the only value modified;
// g is not retained after the call returns.
type Encoder interface {
	Name() string
	Kind() Kind
	Encode(g Geometry, src SourceSize, dst *tensor.Tensor, cfg Config) error
}

// wrongGeometry returns the error for geometry passed to the wrong encoder.
func wrongGeometry(e Encoder, g Geometry) error {
	if g == nil {
		return fmt.Errorf("%w: %s: missing geometry", ErrInvalidArgument, e.Name())
	}
	return fmt.Errorf("%w: %s cannot encode %T", ErrInvalidArgument, e.Name(), g)
}

// checkGeometric validates the arguments shared by the point, line and
// mask encoders. The encoders write a single float32 channel.
func checkGeometric(name string, src SourceSize, dst *tensor.Tensor, cfg Config, modes ...RasterMode) error {
	if !slices.Contains(modes, cfg.Mode) {
		return fmt.Errorf("%w: %s does not support %s mode", ErrInvalidArgument, name, cfg.Mode)
	}
	if cfg.Mode == Heatmap && !(cfg.GaussianSigma > 0) {
		return fmt.Errorf("%w: %s: Gaussian sigma %g is not positive",
			ErrInvalidArgument, name, cfg.GaussianSigma)
	}
	if err := checkTarget(name, src, dst, cfg, 1); err != nil {
		return err
	}
	if dst.DType() != tensor.Float32 {
		return fmt.Errorf("%w: %s needs a float32 tensor, not %s",
			ErrInvalidArgument, name, dst.DType())
	}
	return nil
}

// checkTarget validates the source size and the write region.
func checkTarget(name string, src SourceSize, dst *tensor.Tensor, cfg Config, channels int) error {
	if dst == nil {
		return fmt.Errorf("%w: %s: missing output tensor", ErrInvalidArgument, name)
	}
	if src.Width <= 0 || src.Height <= 0 {
		return fmt.Errorf("%w: %s: invalid source size %dx%d",
			ErrInvalidArgument, name, src.Width, src.Height)
	}
	if err := dst.Check(cfg.Region(channels)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, name, err)
	}
	return nil
}

// checkFinite rejects coordinates which are NaN or infinite.
func checkFinite(name string, pts []vec.Vec2) error {
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: %s: point %d (%g, %g) is not finite",
				ErrInvalidArgument, name, i, p.X, p.Y)
		}
	}
	return nil
}
