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

// Package testcases holds annotations which are encoded by the tests and
// benchmarks and which can be exported for reference rendering.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/annotensor"
	"seehuhn.de/go/annotensor/tensor"
)

// TestCase defines a single encoding test.
type TestCase struct {
	Name     string                // lowercase a-z, 0-9 and _ only
	Encoder  string                // registry name of the encoder
	Source   annotensor.SourceSize // size of the annotated image
	Geometry annotensor.Geometry   // the annotation to encode
	Config   annotensor.Config     // output region and mode
	Channels int                   // channels of the output tensor (zero means 1)
	DType    tensor.DType          // element type of the output tensor
}

// NewTensor allocates a zeroed tensor which holds the output region of tc.
func (tc TestCase) NewTensor() *tensor.Tensor {
	channels := max(tc.Channels, tc.Config.TargetChannel+1)
	return tensor.New(tc.DType, tc.Config.TargetBatch+1, channels,
		tc.Config.OutHeight, tc.Config.OutWidth)
}

// Encode runs the encoder of tc on a fresh tensor.
func (tc TestCase) Encode() (*tensor.Tensor, error) {
	enc, ok := annotensor.New(tc.Encoder)
	if !ok {
		return nil, &UnknownEncoderError{Name: tc.Encoder}
	}
	dst := tc.NewTensor()
	err := enc.Encode(tc.Geometry, tc.Source, dst, tc.Config)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// UnknownEncoderError is returned by [TestCase.Encode] if the encoder name
// is not registered.
type UnknownEncoderError struct {
	Name string
}

func (err *UnknownEncoderError) Error() string {
	return "testcases: unknown encoder " + err.Name
}

// out returns a binary configuration for a width×height output.
func out(width, height int) annotensor.Config {
	return annotensor.Config{OutWidth: width, OutHeight: height, Mode: annotensor.Binary}
}

// heat returns a heatmap configuration for a width×height output.
func heat(width, height int, sigma float64) annotensor.Config {
	return annotensor.Config{
		OutWidth:      width,
		OutHeight:     height,
		Mode:          annotensor.Heatmap,
		GaussianSigma: sigma,
	}
}

// src returns a source size.
func src(width, height int) annotensor.SourceSize {
	return annotensor.SourceSize{Width: width, Height: height}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
