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

// Package annotensor encodes geometric annotations into channels of a
// four-axis [tensor.Tensor], for use as input to a learning pipeline.
//
// Four encoders are provided: [ImageEncoder] copies raster images,
// [PointEncoder] draws points, [LineEncoder] draws polylines and curved
// paths, and [MaskEncoder] draws pixel sets and polygons. Each encoder
// writes into the plane(s) selected by a [Config], after mapping the
// annotation from its source image size to the output size with [Scale].
// Encoders keep no state; the registry functions [New] and [Names] give
// access to them by name.
//
// Binary mode sets covered cells to 1. Heatmap mode draws Gaussians with
// standard deviation [Config.GaussianSigma] and combines overlapping
// contributions using max, so that values always stay in [0, 1] and
// the result does not depend on the order of drawing.
//
// All arguments are validated before the tensor is modified: a call which
// returns an error leaves the tensor unchanged.
package annotensor
